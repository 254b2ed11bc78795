package reddit

import (
	"context"
	"time"
)

// seenCap bounds the id memory of a stream.
const seenCap = 1000

// Stream yields new submissions of one feed as they arrive. It polls
// the /new listing and remembers which ids it has already yielded. A
// fresh stream starts at "now": the posts present on the first poll are
// marked seen without being yielded, so a restarted worker never
// replays history.
type Stream struct {
	c        *Client
	feed     string
	interval time.Duration

	primed  bool
	seen    map[string]struct{}
	order   []string // insertion order of seen, for pruning
	pending []Post
}

// StreamNew returns a stream of new submissions on the given feed.
func (c *Client) StreamNew(feed string) *Stream {
	return &Stream{
		c:        c,
		feed:     feed,
		interval: c.pollInterval,
		seen:     make(map[string]struct{}, seenCap),
	}
}

// Next blocks until a new submission arrives, the context is canceled,
// or a poll fails. Transient poll errors are returned to the caller;
// the stream stays usable afterwards.
func (s *Stream) Next(ctx context.Context) (Post, error) {
	for {
		if len(s.pending) > 0 {
			p := s.pending[0]
			s.pending = s.pending[1:]
			return p, nil
		}

		if err := s.poll(ctx); err != nil {
			return Post{}, err
		}
		if len(s.pending) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return Post{}, ctx.Err()
		case <-time.After(s.interval):
		}
	}
}

func (s *Stream) poll(ctx context.Context) error {
	posts, err := s.c.New(ctx, s.feed)
	if err != nil {
		return err
	}

	if !s.primed {
		for _, p := range posts {
			s.mark(p.ID)
		}
		s.primed = true
		return nil
	}

	// The listing is newest first; yield oldest first.
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		if _, ok := s.seen[p.ID]; ok {
			continue
		}
		s.mark(p.ID)
		s.pending = append(s.pending, p)
	}
	return nil
}

func (s *Stream) mark(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
	for len(s.order) > seenCap {
		delete(s.seen, s.order[0])
		s.order = s.order[1:]
	}
}
