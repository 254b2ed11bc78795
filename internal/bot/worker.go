package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/parrot/internal/match"
	"github.com/vmunix/parrot/internal/reddit"
	"github.com/vmunix/parrot/internal/title"
	"github.com/vmunix/parrot/internal/xref"
)

// Pair is the runtime configuration of one worker.
type Pair struct {
	Parody string
	Source string

	// Quiet computes and logs decisions without posting anything.
	Quiet bool

	// ReconcileSource maintains the aggregate comment on matched
	// source posts.
	ReconcileSource bool

	// MatchSameAuthor permits matches where both posts share an author.
	MatchSameAuthor bool

	SimilarityThreshold float64
	CertaintyThreshold  float64
}

// Worker runs the matching loop for one feed pair: stream parody posts,
// find the closest source post, decide, and act on positive decisions.
type Worker struct {
	feed       Feed
	store      *xref.Store
	stream     func() Streamer
	pair       Pair
	selector   match.Selector
	reconciler *Reconciler
	logger     *slog.Logger
}

// NewWorker creates a worker for one feed pair. stream is called on
// every (re)start so the loop resumes from a fresh stream position.
func NewWorker(feed Feed, store *xref.Store, pair Pair, stream func() Streamer, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("pair", pair.Parody+"/"+pair.Source)
	return &Worker{
		feed:   feed,
		store:  store,
		stream: stream,
		pair:   pair,
		selector: match.Selector{
			SimilarityThreshold: pair.SimilarityThreshold,
			CertaintyThreshold:  pair.CertaintyThreshold,
		},
		reconciler: NewReconciler(feed, store, pair.Parody, logger),
		logger:     logger,
	}
}

// Name identifies the worker in supervisor logs.
func (w *Worker) Name() string {
	return w.pair.Parody + "/" + w.pair.Source
}

// Run streams new parody posts and processes each until the context is
// canceled or the stream fails. A stream failure is returned to the
// supervisor, which restarts the loop on a fresh stream.
func (w *Worker) Run(ctx context.Context) error {
	stream := w.stream()
	for {
		post, err := stream.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("stream %s: %w", w.pair.Parody, err)
		}
		w.process(ctx, post)
	}
}

// process runs one poll iteration for a single parody post. Transient
// failures are logged and abandoned; the loop moves on to the next post.
func (w *Worker) process(ctx context.Context, post reddit.Post) {
	w.logger.Info("analyzing post", "post_id", post.ID, "title", post.Title)

	target := title.Normalize(post.Title)

	candidates, err := w.feed.Hot(ctx, w.pair.Source)
	if err != nil {
		w.logger.Error("hot listing failed", "error", err)
		return
	}

	result := match.Select(target, candidates)
	if result.Post == nil {
		w.logger.Debug("empty candidate listing")
		return
	}
	source := *result.Post

	report := w.selector.Evaluate(target, title.Normalize(source.Title), result.Distance)
	w.logger.Info("evaluated candidate",
		"parody_title", post.Title,
		"source_title", source.Title,
		"distance", report.Distance,
		"max_len", report.MaxLen,
		"overlap", report.Overlap,
		"certainty", report.Certainty,
		"char_similarity", report.CharSimilarity,
		"match", report.Match,
	)
	if !report.Match {
		return
	}

	crosspost, err := w.isCrosspost(ctx, post, source)
	if err != nil {
		w.logger.Error("crosspost lookup failed", "error", err)
		return
	}
	if crosspost {
		w.logger.Info("post is a crosspost, skipping", "post_id", post.ID)
		return
	}
	if !w.pair.MatchSameAuthor && post.Author != "" && post.Author == source.Author {
		w.logger.Info("same author on both posts, skipping", "author", post.Author)
		return
	}

	if w.pair.Quiet {
		w.logger.Info("quiet mode, suppressing comments", "source_id", source.ID)
		return
	}

	// The reply and the cross-reference update are independent: a
	// failure in one must not abort the other or the loop.
	if err := w.replyToParody(ctx, post, source, report.Certainty); err != nil {
		w.logger.Error("parody reply failed", "error", err)
	}

	if w.pair.ReconcileSource {
		if err := w.store.Merge(source.ID, post.ID); err != nil {
			w.logger.Error("xref merge failed", "error", err)
			return
		}
		if err := w.reconciler.Reconcile(ctx, source); err != nil {
			w.logger.Error("reconcile failed", "source_id", source.ID, "error", err)
		}
	}
}

// isCrosspost reports whether source appears among post's duplicates.
func (w *Worker) isCrosspost(ctx context.Context, post, source reddit.Post) (bool, error) {
	dups, err := w.feed.Duplicates(ctx, post.ID)
	if err != nil {
		return false, err
	}
	for _, d := range dups {
		if d.ID == source.ID {
			return true, nil
		}
	}
	return false, nil
}

// replyToParody posts the relevant-post comment under a parody post,
// unless the bot already commented there (restarts replay nothing, but
// the stream can still hand us a post twice).
func (w *Worker) replyToParody(ctx context.Context, post, source reddit.Post, certainty float64) error {
	comments, err := w.feed.Comments(ctx, post.ID)
	if err != nil {
		return err
	}
	me := w.feed.Username()
	for _, c := range comments {
		if c.Author == me {
			w.logger.Info("already replied to parody post", "post_id", post.ID)
			return nil
		}
	}
	if _, err := w.feed.Reply(ctx, post.Name, renderReply(source, certainty)); err != nil {
		return err
	}
	w.logger.Info("replied to parody post", "post_id", post.ID, "source_id", source.ID, "certainty", certainty)
	return nil
}
