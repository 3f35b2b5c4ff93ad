package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/utils"
)

// textResult writes a capability result, mapping error-prefixed text to 502.
func textResult(c echo.Context, out string) error {
	if completion.IsError(out) {
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(out))
	}
	return c.JSON(http.StatusOK, schema.TextResult{Result: out})
}

func (s *Server) handlePostScreenplay(c echo.Context) error {
	var req schema.ScreenplayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(req.Idea) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please enter a scene idea first."))
	}

	var chars string
	if err := s.withProject(req.ProjectID, func(p *schema.Project) {
		chars = p.CharacterContext(req.Characters)
	}); err != nil {
		return c.JSON(http.StatusNotFound, utils.ErrJSON(err.Error()))
	}
	extra := req.Context + "\n" + chars

	out := s.Studio.Screenplay(c.Request().Context(), req.Idea, extra)
	if !completion.IsError(out) {
		_ = s.withProject(req.ProjectID, func(p *schema.Project) { p.AddScript(out) })
	}
	return textResult(c, out)
}

func (s *Server) handlePostCharacter(c echo.Context) error {
	var req schema.CharacterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please enter a character name."))
	}
	if !s.projectExists(req.ProjectID) {
		return c.JSON(http.StatusNotFound, utils.ErrJSON(errProjectNotFound.Error()))
	}

	out := s.Studio.CharacterProfile(c.Request().Context(), req.Name, req.Description)
	if !completion.IsError(out) {
		_ = s.withProject(req.ProjectID, func(p *schema.Project) { p.AddCharacter(req.Name, out) })
	}
	return textResult(c, out)
}

func (s *Server) handlePostIdentity(c echo.Context) error {
	var req schema.IdentityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if !s.projectExists(req.ProjectID) {
		return c.JSON(http.StatusNotFound, utils.ErrJSON(errProjectNotFound.Error()))
	}

	out := s.Studio.FaceIdentity(c.Request().Context(), req.Description)
	if !completion.IsError(out) {
		_ = s.withProject(req.ProjectID, func(p *schema.Project) { p.SetVisualIdentity(out) })
	}
	return textResult(c, out)
}

// handlePostIdentityScript writes a scene around a visual identity, taken from
// the request or from the project's last analysis.
func (s *Server) handlePostIdentityScript(c echo.Context) error {
	var req schema.IdentityScriptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	profile := strings.TrimSpace(req.Profile)
	if profile == "" {
		if err := s.withProject(req.ProjectID, func(p *schema.Project) {
			profile = p.VisualIdentity
		}); err != nil {
			return c.JSON(http.StatusNotFound, utils.ErrJSON(err.Error()))
		}
	}
	if profile == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("Please complete the visual analysis first."))
	}

	return textResult(c, s.Studio.FaceAnchoredScript(c.Request().Context(), profile, req.Genre))
}
