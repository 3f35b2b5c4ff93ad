package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scriptoria/pkg/prompts"
	"scriptoria/pkg/schema"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service":      "Scriptoria API",
		"status":       "ok",
		"capabilities": prompts.Capabilities(),
		"categories":   prompts.Categories(),
	})
}

func (s *Server) handleGetSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.APISchemas)
}
