// Package bot runs the matching loops: one worker per parody/source
// feed pair, a reconciler maintaining the aggregate comment on matched
// source posts, and a supervisor that restarts failed loops.
package bot

import (
	"context"

	"github.com/vmunix/parrot/internal/reddit"
)

// Feed is the subset of the Reddit client the bot consumes. Injected so
// tests can substitute mocks.
type Feed interface {
	Hot(ctx context.Context, feed string) ([]reddit.Post, error)
	GetPost(ctx context.Context, id string) (reddit.Post, error)
	Comments(ctx context.Context, postID string) ([]reddit.Comment, error)
	Duplicates(ctx context.Context, postID string) ([]reddit.Post, error)
	MyComments(ctx context.Context, limit int) ([]reddit.Comment, error)
	Reply(ctx context.Context, parentName, text string) (reddit.Comment, error)
	EditComment(ctx context.Context, commentName, text string) error
	DeleteComment(ctx context.Context, commentName string) error
	Username() string
}

// Streamer yields new submissions of one feed, blocking between items.
type Streamer interface {
	Next(ctx context.Context) (reddit.Post, error)
}
