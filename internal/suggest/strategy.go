package suggest

import (
	"context"
	"errors"

	"github.com/Anhpro1412/Menu-web/internal/menu"
)

// Suggestion sources.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

var (
	// ErrEmptyMenu rejects requests that carry no menu to choose from.
	ErrEmptyMenu = errors.New("menu is empty")

	// ErrRemoteGeneration wraps any failure of the remote model call.
	// It is surfaced to the caller, never downgraded to a local answer.
	ErrRemoteGeneration = errors.New("remote generation failed")
)

// Result is the engine's answer. Nothing is persisted.
type Result struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

// Strategy produces a recommendation of 1–3 items from the given menu.
// The engine picks exactly one implementation at startup.
type Strategy interface {
	Generate(ctx context.Context, message string, items []menu.Item) (Result, error)
	Source() string
}

// Engine validates input and delegates to the configured strategy.
// It keeps no state between calls.
type Engine struct {
	strategy Strategy
}

func NewEngine(strategy Strategy) *Engine {
	return &Engine{strategy: strategy}
}

func (e *Engine) Suggest(ctx context.Context, message string, items []menu.Item) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrEmptyMenu
	}
	return e.strategy.Generate(ctx, message, items)
}

// Mode reports which strategy is active, for /health.
func (e *Engine) Mode() string {
	return e.strategy.Source()
}
