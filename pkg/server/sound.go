package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"scriptoria/pkg/schema"
	"scriptoria/pkg/studio"
	"scriptoria/pkg/utils"
)

func (s *Server) handlePostSound(c echo.Context) error {
	var req schema.SoundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(req.Scene) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please describe the scene first."))
	}

	plan, ok := s.Studio.SonicPlan(c.Request().Context(), req.Scene)
	if !ok {
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(plan.Blueprint))
	}
	return c.JSON(http.StatusOK, plan)
}

type soundPackReq struct {
	Scenes []studio.Scene `json:"scenes,omitempty"`
}

type soundPackResp struct {
	Entries  []studio.PackEntry `json:"entries"`
	Labels   []string           `json:"labels"`
	Markdown string             `json:"markdown"`
}

// handlePostSoundPack streams per-scene progress, then the whole pack. An empty
// body runs the built-in scenes.
func (s *Server) handlePostSoundPack(c echo.Context) error {
	var req soundPackReq
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
	}
	scenes := req.Scenes
	if len(scenes) == 0 {
		scenes = studio.DefaultScenes
	}

	sse, err := utils.NewSSEWriter(c)
	if err != nil {
		return err
	}
	defer sse.Close()

	pack := s.Studio.SoundPack(c.Request().Context(), scenes, func(status string) {
		if err := sse.Event("progress", map[string]string{"status": status}); err != nil {
			log.Warn("sse write failed", "error", err)
		}
	})

	return sse.Event("result", soundPackResp{
		Entries:  pack.Entries,
		Labels:   pack.Labels(),
		Markdown: pack.Markdown(),
	})
}
