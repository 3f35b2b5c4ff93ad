package server

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"scriptoria/pkg/queue"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/studio"
	"scriptoria/pkg/utils"
)

type Server struct {
	Echo   *echo.Echo
	Studio *studio.Studio
	Queue  queue.Queue
	Ctx    context.Context

	// ProjectsFile is where projects are persisted; empty disables saving.
	ProjectsFile string
	// VideoOutput is the file served by GET /api/video/file.
	VideoOutput string

	mu       sync.Mutex
	projects map[string]*schema.Project
}

func NewServer(ctx context.Context, st *studio.Studio, q queue.Queue) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:     e,
		Studio:   st,
		Queue:    q,
		Ctx:      ctx,
		projects: make(map[string]*schema.Project),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.GET("/schema", s.handleGetSchema)

	api.POST("/projects", s.handlePostProject)
	api.GET("/projects/:id", s.handleGetProject)
	api.GET("/projects/:id/book", s.handleGetBook)

	api.POST("/screenplay", s.handlePostScreenplay)
	api.POST("/characters", s.handlePostCharacter)
	api.POST("/identity", s.handlePostIdentity)
	api.POST("/identity/script", s.handlePostIdentityScript)

	api.POST("/sound", s.handlePostSound)
	api.POST("/sound/pack", s.handlePostSoundPack) // SSE

	api.POST("/clip/prompt", s.handlePostClipPrompt)
	api.POST("/clip/blueprint", s.handlePostClipBlueprint)
	api.POST("/video", s.handlePostVideo) // SSE
	api.GET("/video/file", s.handleGetVideoFile)

	api.POST("/production", s.handlePostProduction)
}

// SetProjects replaces the project store, e.g. with projects loaded from disk.
func (s *Server) SetProjects(projects map[string]*schema.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if projects == nil {
		projects = make(map[string]*schema.Project)
	}
	s.projects = projects
}

func (s *Server) Start(addr string) error {
	log.Info("server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down server...")

	s.mu.Lock()
	saveErr := s.saveLocked()
	s.mu.Unlock()
	if s.Queue != nil {
		s.Queue.Stop()
	}
	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return saveErr
}

func (s *Server) saveLocked() error {
	if s.ProjectsFile == "" {
		return nil
	}
	return utils.Save(s.ProjectsFile, s.projects)
}
