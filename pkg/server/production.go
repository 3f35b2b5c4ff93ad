package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/prompts"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/utils"
)

// handlePostProduction generates the plan for one milestone category and stores
// it on the project. Script Finalization also returns a word diff against the
// concept it started from.
func (s *Server) handlePostProduction(c echo.Context) error {
	var req schema.ProductionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Category = strings.TrimSpace(req.Category)
	if strings.TrimSpace(req.Idea) == "" || req.Category == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("idea and category are required"))
	}
	if !s.projectExists(req.ProjectID) {
		return c.JSON(http.StatusNotFound, utils.ErrJSON(errProjectNotFound.Error()))
	}

	plan := s.Studio.ProductionBlueprint(c.Request().Context(), req.Idea, req.Category)
	if completion.IsError(plan) {
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(plan))
	}

	res := schema.PlanResult{Category: req.Category, Plan: plan}
	err := s.withProject(req.ProjectID, func(p *schema.Project) {
		p.AddPlan(req.Category, plan)
		res.Readiness = p.Readiness()
	})
	if err != nil {
		log.Warn("plan not stored", "project", req.ProjectID, "error", err)
	}

	if req.Category == prompts.ScriptFinalization {
		deltas := utils.DiffWords(req.Idea, plan)
		added, removed := utils.ChangeStats(deltas)
		log.Debug("script finalized", "added", added, "removed", removed)
		res.Changes = make([]schema.WordChange, len(deltas))
		for i, d := range deltas {
			res.Changes[i] = schema.WordChange{Op: d.Op, Text: d.Text}
		}
	}

	return c.JSON(http.StatusOK, res)
}
