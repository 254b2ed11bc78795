package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vmunix/parrot/internal/reddit"
	"github.com/vmunix/parrot/internal/xref"
)

// Reconciler keeps the aggregate comment on a source post in sync with
// the cross-reference store. Reconciliation is idempotent: with
// unchanged inputs it performs no network mutation.
type Reconciler struct {
	feed       Feed
	store      *xref.Store
	parodyFeed string
	logger     *slog.Logger
}

// NewReconciler creates a reconciler for one parody feed.
func NewReconciler(feed Feed, store *xref.Store, parodyFeed string, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		feed:       feed,
		store:      store,
		parodyFeed: parodyFeed,
		logger:     logger,
	}
}

// Reconcile recomputes the aggregate comment body for source from the
// store entry and creates, edits, or deletes the bot's comment so it
// matches. Parody ids that no longer resolve, and posts whose author is
// gone, are skipped rather than failing the pass.
func (r *Reconciler) Reconcile(ctx context.Context, source reddit.Post) error {
	ids, err := r.store.Get(source.ID)
	if err != nil {
		return err
	}

	posts := make([]reddit.Post, 0, len(ids))
	for _, id := range ids {
		p, err := r.feed.GetPost(ctx, id)
		if err != nil {
			r.logger.Debug("skipping unresolvable parody post", "parody_id", id, "error", err)
			continue
		}
		if p.Author == "" {
			continue
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Score > posts[j].Score })

	own, err := r.ownComment(ctx, source.ID)
	if err != nil {
		return fmt.Errorf("find own comment on %s: %w", source.ID, err)
	}

	body := renderAggregate(r.parodyFeed, posts)

	switch {
	case own == nil && len(posts) == 0:
		return nil
	case own == nil:
		if _, err := r.feed.Reply(ctx, source.Name, body); err != nil {
			return fmt.Errorf("post aggregate comment on %s: %w", source.ID, err)
		}
		r.logger.Info("posted aggregate comment", "source_id", source.ID, "parodies", len(posts))
	case len(posts) == 0:
		if err := r.feed.DeleteComment(ctx, own.Name); err != nil {
			return fmt.Errorf("delete aggregate comment on %s: %w", source.ID, err)
		}
		r.logger.Info("deleted aggregate comment", "source_id", source.ID)
	case own.Body == body:
		r.logger.Debug("aggregate comment unchanged", "source_id", source.ID)
	default:
		if err := r.feed.EditComment(ctx, own.Name, body); err != nil {
			return fmt.Errorf("edit aggregate comment on %s: %w", source.ID, err)
		}
		r.logger.Info("edited aggregate comment", "source_id", source.ID, "parodies", len(posts))
	}
	return nil
}

// ownComment finds the bot's comment on a post, or nil if it has not
// commented there.
func (r *Reconciler) ownComment(ctx context.Context, postID string) (*reddit.Comment, error) {
	comments, err := r.feed.Comments(ctx, postID)
	if err != nil {
		return nil, err
	}
	me := r.feed.Username()
	for i := range comments {
		if comments[i].Author == me {
			return &comments[i], nil
		}
	}
	return nil, nil
}
