package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"scriptoria/pkg/schema"
	"scriptoria/pkg/utils"
)

type projectReq struct {
	Name string `json:"name,omitempty"`
}

type projectResp struct {
	Project   *schema.Project  `json:"project"`
	Readiness schema.Readiness `json:"readiness"`
}

func (s *Server) handlePostProject(c echo.Context) error {
	var req projectReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	p := schema.NewProject(req.Name)

	s.mu.Lock()
	s.projects[p.ID] = p
	resp := projectResp{Project: p, Readiness: p.Readiness()}
	s.persistLocked()
	s.mu.Unlock()

	log.Info("project created", "id", p.ID, "name", p.Name)
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleGetProject(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("project not found"))
	}
	return c.JSON(http.StatusOK, projectResp{Project: p, Readiness: p.Readiness()})
}

// handleGetBook downloads the master production book as plain text.
func (s *Server) handleGetBook(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	p, ok := s.projects[id]
	var book string
	if ok {
		book = p.MasterBook()
	}
	s.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("project not found"))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="master_production_book.txt"`)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(book))
}

var errProjectNotFound = errors.New("project not found")

// withProject runs fn on the named project while holding the store lock and
// persists afterwards. An empty id is a no-op.
func (s *Server) withProject(id string, fn func(p *schema.Project)) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return errProjectNotFound
	}
	fn(p)
	s.persistLocked()
	return nil
}

// projectExists reports whether id is empty or names a known project.
func (s *Server) projectExists(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.projects[id]
	return ok
}

func (s *Server) persistLocked() {
	if err := s.saveLocked(); err != nil {
		log.Warn("failed to save projects", "file", s.ProjectsFile, "error", err)
	}
}
