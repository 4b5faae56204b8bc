package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

const defaultTimeout = 10 * time.Second

// Client notifies an uptime monitor that a scheduled job finished.
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

func New(logger *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// Heartbeat sends a GET to url. An empty url is a no-op.
func (c *Client) Heartbeat(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build heartbeat request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("[Heartbeat][Do]", map[string]string{
			"url":   url,
			"error": err.Error(),
		})
		return errors.Wrap(err, "send heartbeat")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("[Heartbeat] monitor rejected heartbeat", map[string]string{
			"url":    url,
			"status": resp.Status,
		})
		return fmt.Errorf("heartbeat rejected: %s", resp.Status)
	}

	c.logger.Debug("[Heartbeat] sent", map[string]string{
		"url":    url,
		"status": resp.Status,
	})
	return nil
}
