package bot

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Runnable is a long-lived loop the supervisor keeps alive.
type Runnable interface {
	Name() string
	Run(ctx context.Context) error
}

// Supervisor runs each registered loop in its own goroutine and
// restarts it whenever it fails. Loops are independent: one restarting
// never affects the others. Only context cancellation stops them.
type Supervisor struct {
	logger *slog.Logger
	loops  []Runnable
}

// NewSupervisor creates an empty supervisor.
func NewSupervisor(logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Supervisor{logger: logger}
}

// Add registers a loop. Must be called before Run.
func (s *Supervisor) Add(r Runnable) {
	s.loops = append(s.loops, r)
}

// Run starts every registered loop and blocks until the context is
// canceled.
func (s *Supervisor) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, loop := range s.loops {
		g.Go(func() error {
			return s.keepAlive(ctx, loop)
		})
	}
	return g.Wait()
}

// keepAlive cycles one loop through running and restarting until the
// context is canceled.
func (s *Supervisor) keepAlive(ctx context.Context, loop Runnable) error {
	logger := s.logger.With("worker", loop.Name())
	for {
		logger.Info("worker starting")
		err := runRecovering(ctx, loop)
		if ctx.Err() != nil {
			logger.Info("worker stopped")
			return ctx.Err()
		}
		logger.Error("worker failed, restarting", "error", err)
	}
}

// runRecovering runs one episode of a loop, converting panics into
// errors so the supervisor can restart instead of crashing the process.
func runRecovering(ctx context.Context, loop Runnable) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return loop.Run(ctx)
}
