package queue

import (
	"scriptoria/pkg/schema"
)

// Job is one video build waiting for the render worker.
type Job struct {
	Subject string
	// Progress receives status lines; sends never block the worker.
	Progress chan string
}

type Queue interface {
	Start()
	Stop()
	Add(job *Job) (chan schema.RenderResult, chan error, error)
}
