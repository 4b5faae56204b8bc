package main

import (
	_ "github.com/dwarvesf/lending-backend/docs"
	"github.com/dwarvesf/lending-backend/internal/server"
)

// @title Lending Backend API
// @version 1.0
// @description Action surface of the lending dashboard: selection state, preview and transaction dispatch.
// @BasePath /api/v1
func main() {
	server.Init()
}
