package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/parrot/internal/mocks"
	"github.com/vmunix/parrot/internal/reddit"
)

var errStreamClosed = errors.New("stream closed")

func testPair() Pair {
	return Pair{
		Parody:              "anarchychess",
		Source:              "chess",
		ReconcileSource:     true,
		SimilarityThreshold: 0.40,
		CertaintyThreshold:  0.50,
	}
}

var parodyPost = reddit.Post{
	ID:        "p1",
	Name:      "t3_p1",
	Title:     "I beat magnus carlsen",
	Permalink: "/r/anarchychess/comments/p1/",
	Author:    "bob",
	Score:     12,
	Subreddit: "anarchychess",
}

// newTestWorker wires a worker whose stream yields the given posts and
// then fails with errStreamClosed, so Run terminates.
func newTestWorker(t *testing.T, feed *mocks.MockFeed, pair Pair, posts ...reddit.Post) (*Worker, *mocks.MockStreamer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	streamer := mocks.NewMockStreamer(ctrl)
	calls := make([]any, 0, len(posts)+1)
	for _, p := range posts {
		calls = append(calls, streamer.EXPECT().Next(gomock.Any()).Return(p, nil))
	}
	calls = append(calls, streamer.EXPECT().Next(gomock.Any()).Return(reddit.Post{}, errStreamClosed))
	gomock.InOrder(calls...)

	store := testStore(t)
	w := NewWorker(feed, store, pair, func() Streamer { return streamer }, discardLogger())
	return w, streamer
}

func TestWorker_MatchRepliesAndReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	w, _ := newTestWorker(t, feed, testPair(), parodyPost)

	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{sourcePost}, nil)
	feed.EXPECT().Duplicates(gomock.Any(), "p1").Return(nil, nil)

	// Parody-side reply.
	feed.EXPECT().Comments(gomock.Any(), "p1").Return(nil, nil)
	feed.EXPECT().Reply(gomock.Any(), "t3_p1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body string) (reddit.Comment, error) {
			assert.Contains(t, body, "Relevant r/chess post:")
			return reddit.Comment{Name: "t1_r1"}, nil
		})

	// Source-side reconciliation.
	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(parodyPost, nil)
	feed.EXPECT().Comments(gomock.Any(), "s1").Return(nil, nil)
	feed.EXPECT().Reply(gomock.Any(), "t3_s1", gomock.Any()).Return(reddit.Comment{Name: "t1_r2"}, nil)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)

	ids, err := w.store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)
}

func TestWorker_NoMatchDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	w, _ := newTestWorker(t, feed, testPair(), parodyPost)

	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{
		{ID: "x1", Title: "Completely unrelated opening theory discussion"},
	}, nil)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)
}

func TestWorker_EmptyListingDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	w, _ := newTestWorker(t, feed, testPair(), parodyPost)

	feed.EXPECT().Hot(gomock.Any(), "chess").Return(nil, nil)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)
}

func TestWorker_CrosspostVeto(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)

	// Identical titles would match with certainty 1.0; the crosspost
	// check still vetoes.
	crosspost := parodyPost
	crosspost.Title = sourcePost.Title

	w, _ := newTestWorker(t, feed, testPair(), crosspost)

	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{sourcePost}, nil)
	feed.EXPECT().Duplicates(gomock.Any(), "p1").Return([]reddit.Post{sourcePost}, nil)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)

	ids, err := w.store.Get("s1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestWorker_SameAuthorVeto(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)

	selfParody := parodyPost
	selfParody.Author = sourcePost.Author

	w, _ := newTestWorker(t, feed, testPair(), selfParody)

	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{sourcePost}, nil)
	feed.EXPECT().Duplicates(gomock.Any(), "p1").Return(nil, nil)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)
}

func TestWorker_QuietMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)

	pair := testPair()
	pair.Quiet = true
	w, _ := newTestWorker(t, feed, pair, parodyPost)

	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{sourcePost}, nil)
	feed.EXPECT().Duplicates(gomock.Any(), "p1").Return(nil, nil)
	// No Comments, Reply, or store writes in quiet mode.

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)

	ids, err := w.store.Get("s1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestWorker_AlreadyReplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)

	pair := testPair()
	pair.ReconcileSource = false
	w, _ := newTestWorker(t, feed, pair, parodyPost)

	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{sourcePost}, nil)
	feed.EXPECT().Duplicates(gomock.Any(), "p1").Return(nil, nil)
	feed.EXPECT().Comments(gomock.Any(), "p1").
		Return([]reddit.Comment{{Name: "t1_old", Author: botName, Body: "earlier reply"}}, nil)
	// No Reply: the bot already commented here.

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)
}

func TestWorker_HotListingFailureAbandonsIteration(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	w, _ := newTestWorker(t, feed, testPair(), parodyPost, parodyPost)

	// First iteration fails on the listing, second succeeds but finds
	// no candidates; the loop keeps going either way.
	gomock.InOrder(
		feed.EXPECT().Hot(gomock.Any(), "chess").Return(nil, reddit.ErrRateLimited),
		feed.EXPECT().Hot(gomock.Any(), "chess").Return(nil, nil),
	)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)
}

func TestWorker_ReplyFailureStillReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	w, _ := newTestWorker(t, feed, testPair(), parodyPost)

	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Hot(gomock.Any(), "chess").Return([]reddit.Post{sourcePost}, nil)
	feed.EXPECT().Duplicates(gomock.Any(), "p1").Return(nil, nil)

	// Parody reply is rate limited.
	feed.EXPECT().Comments(gomock.Any(), "p1").Return(nil, reddit.ErrRateLimited)

	// The cross-reference update still happens.
	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(parodyPost, nil)
	feed.EXPECT().Comments(gomock.Any(), "s1").Return(nil, nil)
	feed.EXPECT().Reply(gomock.Any(), "t3_s1", gomock.Any()).Return(reddit.Comment{Name: "t1_r2"}, nil)

	err := w.Run(context.Background())
	require.ErrorIs(t, err, errStreamClosed)

	ids, err := w.store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)
}

func TestWorker_ContextCancelStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	streamer := mocks.NewMockStreamer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	streamer.EXPECT().Next(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (reddit.Post, error) {
			cancel()
			return reddit.Post{}, ctx.Err()
		})

	w := NewWorker(feed, testStore(t), testPair(), func() Streamer { return streamer }, discardLogger())
	err := w.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
