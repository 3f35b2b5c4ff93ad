// Package completion turns provider calls into plain text results. A failed call
// never surfaces as a Go error: it comes back as text starting with ErrorPrefix,
// and callers test for it with IsError.
package completion

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"scriptoria/pkg/inference"
	"scriptoria/pkg/utils"
)

// ErrorPrefix marks a failed completion. Display code matches on it, so the
// exact bytes must not change.
const ErrorPrefix = "Error: "

// IsError reports whether a completion result carries the error marker.
func IsError(result string) bool {
	return strings.HasPrefix(result, ErrorPrefix)
}

// Failure renders err the way a failed completion is reported.
func Failure(err error) string {
	return ErrorPrefix + err.Error()
}

// Completer is the contract every capability depends on.
type Completer interface {
	Complete(ctx context.Context, system, user string) string
}

type Client struct {
	inf inference.Inferencer
}

func New(inf inference.Inferencer) *Client {
	return &Client{inf: inf}
}

// Complete issues exactly one request and returns the message text unaltered, or
// an ErrorPrefix string describing the failure.
func (c *Client) Complete(ctx context.Context, system, user string) (result string) {
	if log.GetLevel() <= log.DebugLevel {
		if n, err := utils.NumTokens(system + user); err == nil {
			log.Debug("completion request", "prompt_tokens", n)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("completion panicked", "panic", r)
			result = ErrorPrefix + "completion failed unexpectedly"
		}
	}()

	out, err := c.inf.Infer(ctx, nil, system, user)
	if err != nil {
		log.Warn("completion failed", "error", err)
		return Failure(err)
	}
	return out
}
