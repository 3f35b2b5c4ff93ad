package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	glog "github.com/labstack/gommon/log"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/config"
	"scriptoria/pkg/media"
	"scriptoria/pkg/queue/render"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/server"
	"scriptoria/pkg/studio"
	"scriptoria/pkg/utils"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.Load()
	log.SetLevel(cfg.Level())

	inf, err := cfg.Inferencer(ctx)
	if err != nil {
		log.Fatal("failed to configure inference", "provider", cfg.Provider, "error", err)
	}
	client := completion.New(inf)
	st := studio.New(client, cfg.ImageBaseURL)

	pipeline := media.NewPipeline(client, media.NewFetcher(cfg.ImageBaseURL), &media.FFmpegEncoder{Path: cfg.FFmpegPath})
	pipeline.ScratchDir = cfg.ScratchDir
	pipeline.Output = cfg.VideoOutput
	pipeline.Poster = cfg.Poster

	renders := render.New(ctx, pipeline, config.DefaultQueueSize, cfg.Poster)
	renders.Start()

	srv := server.NewServer(ctx, st, renders)
	srv.ProjectsFile = cfg.ProjectsFile
	srv.VideoOutput = cfg.VideoOutput
	if cfg.Level() <= log.DebugLevel {
		srv.Echo.Logger.SetLevel(glog.DEBUG)
	} else {
		srv.Echo.Logger.SetLevel(glog.INFO)
	}

	projects, err := utils.Load[map[string]*schema.Project](cfg.ProjectsFile)
	switch {
	case err == nil:
		srv.SetProjects(projects)
		log.Infof("Loaded %d projects from %s", len(projects), cfg.ProjectsFile)
	case !errors.Is(err, os.ErrNotExist):
		log.Warnf("Failed to load %s: %v", cfg.ProjectsFile, err)
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("shutdown", "error", err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
		done()
	}
	<-finishedShutDown
}
