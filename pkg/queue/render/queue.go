// Package render runs video builds one at a time. Builds write to a fixed output
// path, so a single worker goroutine is what keeps them from clobbering each other.
package render

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"scriptoria/pkg/media"
	"scriptoria/pkg/queue"
	"scriptoria/pkg/schema"
	"scriptoria/pkg/utils"
)

var (
	ErrQueueFull    = errors.New("queue is full")
	ErrQueueStopped = errors.New("render queue stopped")
)

// Renderer is satisfied by *media.Pipeline.
type Renderer interface {
	Render(ctx context.Context, subject string, progress media.Progress) (string, error)
}

type Queue struct {
	renderer Renderer
	ctx      context.Context
	poster   bool
	stop     chan struct{}
	items    chan *Item

	mu      sync.Mutex
	stopped bool
}

// Item carries a job and its reply channels. Exactly one of Response or Error
// receives a value.
type Item struct {
	Job      *queue.Job
	Response chan schema.RenderResult
	Error    chan error
}

var _ queue.Queue = (*Queue)(nil)

func New(ctx context.Context, r Renderer, size int, poster bool) *Queue {
	if size <= 0 {
		size = 8
	}
	return &Queue{
		renderer: r,
		ctx:      ctx,
		poster:   poster,
		items:    make(chan *Item, size),
		stop:     make(chan struct{}),
	}
}

func (q *Queue) Start() {
	go q.processLoop()
}

// Stop ends the worker after its current build. Jobs still waiting are answered
// with ErrQueueStopped, and later Adds fail with it.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	close(q.stop)
	q.mu.Unlock()

	q.drain()
}

// drain rejects every waiting job. It is safe to run from Stop and the worker
// at once since each item is received only once.
func (q *Queue) drain() {
	for {
		select {
		case item := <-q.items:
			item.Error <- ErrQueueStopped
		default:
			return
		}
	}
}

func (q *Queue) Add(job *queue.Job) (chan schema.RenderResult, chan error, error) {
	respCh := make(chan schema.RenderResult, 1)
	errCh := make(chan error, 1)

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return nil, nil, ErrQueueStopped
	}

	select {
	case q.items <- &Item{
		Job:      job,
		Response: respCh,
		Error:    errCh,
	}:
		return respCh, errCh, nil
	default:
		return nil, nil, ErrQueueFull
	}
}

func (q *Queue) processLoop() {
	log.Info("render queue started")
	for {
		select {
		case <-q.stop:
			q.drain()
			log.Info("render queue stopped")
			return
		case item := <-q.items:
			select {
			case <-q.stop:
				item.Error <- ErrQueueStopped
				q.drain()
				log.Info("render queue stopped")
				return
			default:
			}
			q.processItem(item)
		}
	}
}

func (q *Queue) processItem(item *Item) {
	job := item.Job
	log.Info("rendering video", "subject", utils.LimitStr(job.Subject, 60))

	progress := func(status string) {
		if job.Progress == nil {
			return
		}
		select {
		case job.Progress <- status:
		default:
		}
	}

	path, err := q.renderer.Render(q.ctx, job.Subject, progress)
	if err != nil {
		log.Warn("render failed", "error", err)
		item.Error <- err
		return
	}

	res := schema.RenderResult{Path: path}
	if poster := media.PosterPath(path); q.poster && utils.Exists(poster) {
		res.Poster = poster
	}
	item.Response <- res
}
