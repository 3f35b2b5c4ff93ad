package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/utils"
)

func (s *Server) handlePostClipPrompt(c echo.Context) error {
	var req schema.ClipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(req.Idea) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please enter a video idea first."))
	}
	return textResult(c, s.Studio.VideoPrompt(c.Request().Context(), req.Idea, req.Style))
}

// handlePostClipBlueprint returns all four clip documents. Individual documents
// may carry error text; the request only fails when every one of them did.
func (s *Server) handlePostClipBlueprint(c echo.Context) error {
	var req schema.ClipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(req.Idea) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please enter a video idea first."))
	}

	bp := s.Studio.ClipBlueprint(c.Request().Context(), req.Idea, func(step string, percent int) {
		log.Debug("clip blueprint", "step", step, "percent", percent)
	})

	docs := []string{bp.Prompt, bp.Specs, bp.Motion, bp.Storyboard}
	failed := 0
	for _, d := range docs {
		if completion.IsError(d) {
			failed++
		}
	}
	if failed == len(docs) {
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(bp.Prompt))
	}
	return c.JSON(http.StatusOK, bp)
}
