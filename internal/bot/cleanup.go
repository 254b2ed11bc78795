package bot

import (
	"context"
	"log/slog"
	"time"
)

// cleanupFetchLimit is how many recent comments one sweep inspects.
const cleanupFetchLimit = 100

// Cleanup periodically deletes the bot's own comments that the
// community has voted below a score floor.
type Cleanup struct {
	feed     Feed
	interval time.Duration
	minScore int
	logger   *slog.Logger
}

// NewCleanup creates a cleanup loop. Comments scoring below minScore
// are deleted every interval.
func NewCleanup(feed Feed, interval time.Duration, minScore int, logger *slog.Logger) *Cleanup {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleanup{
		feed:     feed,
		interval: interval,
		minScore: minScore,
		logger:   logger.With("worker", "cleanup"),
	}
}

// Name identifies the loop in supervisor logs.
func (c *Cleanup) Name() string { return "cleanup" }

// Run sweeps immediately and then once per interval until the context
// is canceled.
func (c *Cleanup) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		if err := c.sweep(ctx); err != nil {
			c.logger.Error("sweep failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Cleanup) sweep(ctx context.Context) error {
	comments, err := c.feed.MyComments(ctx, cleanupFetchLimit)
	if err != nil {
		return err
	}
	for _, cm := range comments {
		if cm.Score >= c.minScore {
			continue
		}
		if err := c.feed.DeleteComment(ctx, cm.Name); err != nil {
			c.logger.Error("delete failed", "comment", cm.Name, "error", err)
			continue
		}
		c.logger.Info("deleted downvoted comment", "comment", cm.Name, "score", cm.Score)
	}
	return nil
}
