package view

// Response is the envelope of every API response.
type Response[T any] struct {
	Data    T           `json:"data"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Request interface{} `json:"request,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateResponse builds the envelope. The request is echoed back only when
// the call failed.
func CreateResponse[T any](data T, err error, req interface{}, msg string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Message: msg,
	}
	if err != nil {
		resp.Error = err.Error()
		resp.Request = req
	}
	return resp
}
