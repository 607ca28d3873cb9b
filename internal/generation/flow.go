// Package generation runs one plan generation at a time: build the request, call the
// service, parse the reply and publish it to the plan store.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/jonathan/meal-planner/internal/mealplan"
	"github.com/jonathan/meal-planner/internal/parsing"
	"github.com/jonathan/meal-planner/internal/planning"
	"github.com/jonathan/meal-planner/internal/types"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrBusy is returned when a generation is requested while another is in flight
	ErrBusy = errors.New("a meal plan is already being generated")
	// ErrCancelled is returned when an in-flight generation was cancelled
	ErrCancelled = errors.New("meal plan generation cancelled")
)

// Flow coordinates plan generation against a single store
type Flow struct {
	client llm.Client
	config *llm.Config
	store  *mealplan.Store

	busy    *semaphore.Weighted
	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewFlow creates a flow. A nil config uses the default model settings.
func NewFlow(client llm.Client, config *llm.Config, store *mealplan.Store) *Flow {
	if config == nil {
		config = llm.DefaultConfig()
	}
	return &Flow{
		client: client,
		config: config,
		store:  store,
		busy:   semaphore.NewWeighted(1),
	}
}

// Generate validates p, requests a plan and stores it on success.
//
// Incomplete preferences fail with *types.ValidationError before anything else happens.
// A second call while one is running fails with ErrBusy. Service, transport and parse
// failures are returned as is and leave the current plan untouched; a cancelled run
// fails with an error matching ErrCancelled.
func (f *Flow) Generate(ctx context.Context, p types.Preferences) (*types.MealPlan, error) {
	req, err := planning.Build(p, f.config)
	if err != nil {
		return nil, err
	}

	if !f.busy.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer f.busy.Release(1)
	f.running.Store(true)
	defer f.running.Store(false)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	f.setCancel(cancel)
	defer f.setCancel(nil)

	start := time.Now()
	log.Printf("[generation] requesting plan (provider=%s, model=%s)", f.config.Provider, req.Model)

	raw, err := f.client.Generate(runCtx, req)
	if err != nil {
		return nil, f.fail(runCtx, start, err)
	}

	plan, err := parsing.Parse(raw)
	if err != nil {
		return nil, f.fail(runCtx, start, err)
	}

	// Holding mu keeps Cancel from landing between the check and the store update
	f.mu.Lock()
	defer f.mu.Unlock()
	if runCtx.Err() != nil {
		return nil, f.fail(runCtx, start, runCtx.Err())
	}
	f.store.SetPlan(plan)

	log.Printf("[generation] plan ready in %s: lunch=%q", time.Since(start).Round(time.Millisecond), plan.Lunch.Name)
	return plan, nil
}

// Cancel aborts the in-flight generation, if any, and reports whether there was one
func (f *Flow) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel == nil {
		return false
	}
	f.cancel()
	return true
}

// Busy reports whether a generation is in flight. It never touches the semaphore,
// so polling it cannot make Generate fail with ErrBusy.
func (f *Flow) Busy() bool {
	return f.running.Load()
}

func (f *Flow) setCancel(cancel context.CancelFunc) {
	f.mu.Lock()
	f.cancel = cancel
	f.mu.Unlock()
}

// fail logs the failure once and converts cancellation into ErrCancelled
func (f *Flow) fail(runCtx context.Context, start time.Time, err error) error {
	elapsed := time.Since(start).Round(time.Millisecond)

	if errors.Is(runCtx.Err(), context.Canceled) {
		log.Printf("[generation] cancelled after %s", elapsed)
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	log.Printf("[generation] failed after %s (%s): %v", elapsed, Classify(err), err)
	return err
}

// Classify names the failure class of a generation error for logs and adapters
func Classify(err error) string {
	var validationErr *types.ValidationError
	var transportErr *llm.TransportError
	var serviceErr *llm.ServiceError
	var parseErr *parsing.ParseError

	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrBusy):
		return "busy"
	case errors.Is(err, ErrCancelled):
		return "cancelled"
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &serviceErr):
		return "service"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "unknown"
	}
}
