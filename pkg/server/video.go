package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"scriptoria/pkg/media"
	"scriptoria/pkg/queue"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/utils"
)

// handlePostVideo queues a render and streams its progress lines as SSE
// "progress" events, ending with a "result" or "error" event.
func (s *Server) handlePostVideo(c echo.Context) error {
	var req schema.VideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please enter a video idea first."))
	}
	if s.Queue == nil {
		return c.JSON(http.StatusServiceUnavailable, utils.ErrJSON("video rendering is not available"))
	}

	progress := make(chan string, 16)
	resCh, errCh, err := s.Queue.Add(&queue.Job{Subject: req.Subject, Progress: progress})
	if err != nil {
		log.Warn("render not queued", "error", err)
		return c.JSON(http.StatusServiceUnavailable, utils.ErrJSON(err.Error()))
	}

	sse, err := utils.NewSSEWriter(c)
	if err != nil {
		return err
	}
	defer sse.Close()

	send := func(status string) {
		if err := sse.Event("progress", map[string]string{"status": status}); err != nil {
			log.Warn("sse write failed", "error", err)
		}
	}
	drain := func() {
		for {
			select {
			case status := <-progress:
				send(status)
			default:
				return
			}
		}
	}

	for {
		select {
		case status := <-progress:
			send(status)
		case res := <-resCh:
			drain()
			return sse.Event("result", res)
		case err := <-errCh:
			drain()
			return sse.Event("error", utils.ErrJSON(err.Error()))
		case <-s.Ctx.Done():
			drain()
			return sse.Event("error", utils.ErrJSON("server is shutting down"))
		case <-c.Request().Context().Done():
			log.Info("client left before render finished", "subject", req.Subject)
			return nil
		}
	}
}

// handleGetVideoFile serves the last rendered video, or its poster with ?poster=true.
func (s *Server) handleGetVideoFile(c echo.Context) error {
	path := s.VideoOutput
	if c.QueryParam("poster") == "true" {
		path = media.PosterPath(path)
	}
	if path == "" || !utils.Exists(path) {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("no video has been rendered yet"))
	}
	return c.File(path)
}
