package bot

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/parrot/internal/mocks"
	"github.com/vmunix/parrot/internal/reddit"
	"github.com/vmunix/parrot/internal/xref"
)

const botName = "parrot-bot"

func testStore(t *testing.T) *xref.Store {
	t.Helper()
	store, err := xref.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var sourcePost = reddit.Post{
	ID:        "s1",
	Name:      "t3_s1",
	Title:     "I beat Magnus Carlsen today",
	Permalink: "/r/chess/comments/s1/",
	Author:    "alice",
	Score:     100,
	Subreddit: "chess",
}

func TestReconcile_CreatesComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testStore(t)
	feed := mocks.NewMockFeed(ctrl)

	require.NoError(t, store.Merge("s1", "p1"))

	parody := reddit.Post{ID: "p1", Title: "I beat Magnus at hungry hungry hippos", Permalink: "/r/ac/p1/", Author: "bob", Score: 12}
	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(parody, nil)
	feed.EXPECT().Comments(gomock.Any(), "s1").Return(nil, nil)
	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Reply(gomock.Any(), "t3_s1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body string) (reddit.Comment, error) {
			assert.Contains(t, body, "parodied on r/anarchychess")
			assert.Contains(t, body, "I beat Magnus at hungry hungry hippos")
			return reddit.Comment{Name: "t1_c1", Author: botName, Body: body}, nil
		})

	r := NewReconciler(feed, store, "anarchychess", discardLogger())
	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
}

func TestReconcile_NoEntryNoComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testStore(t)
	feed := mocks.NewMockFeed(ctrl)

	feed.EXPECT().Comments(gomock.Any(), "s1").Return(nil, nil)
	feed.EXPECT().Username().Return(botName).AnyTimes()
	// No Reply, Edit, or Delete expected.

	r := NewReconciler(feed, store, "anarchychess", discardLogger())
	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
}

func TestReconcile_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testStore(t)
	feed := mocks.NewMockFeed(ctrl)

	require.NoError(t, store.Merge("s1", "p1"))
	parody := reddit.Post{ID: "p1", Title: "A parody", Permalink: "/r/ac/p1/", Author: "bob", Score: 12}
	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(parody, nil).Times(2)

	// First pass: no prior comment, one network mutation.
	var posted string
	feed.EXPECT().Comments(gomock.Any(), "s1").Return(nil, nil)
	feed.EXPECT().Reply(gomock.Any(), "t3_s1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body string) (reddit.Comment, error) {
			posted = body
			return reddit.Comment{Name: "t1_c1", Author: botName, Body: body}, nil
		})

	r := NewReconciler(feed, store, "anarchychess", discardLogger())
	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
	require.NotEmpty(t, posted)

	// Second pass with unchanged inputs: no mutation at all.
	feed.EXPECT().Comments(gomock.Any(), "s1").
		Return([]reddit.Comment{{Name: "t1_c1", Author: botName, Body: posted}}, nil)

	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
}

func TestReconcile_EditsWhenListChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testStore(t)
	feed := mocks.NewMockFeed(ctrl)

	require.NoError(t, store.Merge("s1", "p1"))
	require.NoError(t, store.Merge("s1", "p2"))

	lowScore := reddit.Post{ID: "p1", Title: "Old parody", Permalink: "/r/ac/p1/", Author: "bob", Score: 3}
	highScore := reddit.Post{ID: "p2", Title: "New hotness", Permalink: "/r/ac/p2/", Author: "eve", Score: 50}
	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(lowScore, nil)
	feed.EXPECT().GetPost(gomock.Any(), "p2").Return(highScore, nil)
	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Comments(gomock.Any(), "s1").
		Return([]reddit.Comment{{Name: "t1_c1", Author: botName, Body: "stale body"}}, nil)
	feed.EXPECT().EditComment(gomock.Any(), "t1_c1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body string) error {
			// Higher score renders first.
			assert.Less(t, strings.Index(body, "New hotness"), strings.Index(body, "Old parody"))
			return nil
		})

	r := NewReconciler(feed, store, "anarchychess", discardLogger())
	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
}

func TestReconcile_DeletesWhenNothingResolves(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testStore(t)
	feed := mocks.NewMockFeed(ctrl)

	require.NoError(t, store.Merge("s1", "p1"))

	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(reddit.Post{}, reddit.ErrNotFound)
	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Comments(gomock.Any(), "s1").
		Return([]reddit.Comment{{Name: "t1_c1", Author: botName, Body: "old body"}}, nil)
	feed.EXPECT().DeleteComment(gomock.Any(), "t1_c1").Return(nil)

	r := NewReconciler(feed, store, "anarchychess", discardLogger())
	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
}

func TestReconcile_SkipsAuthorlessPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testStore(t)
	feed := mocks.NewMockFeed(ctrl)

	require.NoError(t, store.Merge("s1", "p1"))
	require.NoError(t, store.Merge("s1", "p2"))

	deleted := reddit.Post{ID: "p1", Title: "Deleted account", Author: "", Score: 99}
	alive := reddit.Post{ID: "p2", Title: "Still here", Permalink: "/r/ac/p2/", Author: "bob", Score: 1}
	feed.EXPECT().GetPost(gomock.Any(), "p1").Return(deleted, nil)
	feed.EXPECT().GetPost(gomock.Any(), "p2").Return(alive, nil)
	feed.EXPECT().Username().Return(botName).AnyTimes()
	feed.EXPECT().Comments(gomock.Any(), "s1").Return(nil, nil)
	feed.EXPECT().Reply(gomock.Any(), "t3_s1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body string) (reddit.Comment, error) {
			assert.NotContains(t, body, "Deleted account")
			assert.Contains(t, body, "Still here")
			return reddit.Comment{Name: "t1_c1"}, nil
		})

	r := NewReconciler(feed, store, "anarchychess", discardLogger())
	require.NoError(t, r.Reconcile(context.Background(), sourcePost))
}
