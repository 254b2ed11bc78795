package reddit

import "encoding/json"

// Post is a submission on a feed, carrying the attributes the matcher
// and renderer need. Author is empty when the account was deleted.
type Post struct {
	ID        string
	Name      string // fullname, e.g. "t3_abc123"
	Title     string
	Permalink string
	Author    string
	Score     int
	NSFW      bool
	Subreddit string
}

// Comment is a comment the bot reads or wrote.
type Comment struct {
	ID     string
	Name   string // fullname, e.g. "t1_def456"
	Author string
	Body   string
	Score  int
}

// Wire types. The listing endpoints all wrap their payloads in
// kind/data envelopes.

type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listing struct {
	Kind string `json:"kind"`
	Data struct {
		Children []thing `json:"children"`
	} `json:"data"`
}

type postData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Permalink string  `json:"permalink"`
	Author    string  `json:"author"`
	Score     int     `json:"score"`
	Over18    bool    `json:"over_18"`
	Subreddit string  `json:"subreddit"`
	Created   float64 `json:"created_utc"`
}

func (d postData) post() Post {
	author := d.Author
	if author == "[deleted]" {
		author = ""
	}
	return Post{
		ID:        d.ID,
		Name:      d.Name,
		Title:     d.Title,
		Permalink: d.Permalink,
		Author:    author,
		Score:     d.Score,
		NSFW:      d.Over18,
		Subreddit: d.Subreddit,
	}
}

type commentData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Body   string `json:"body"`
	Score  int    `json:"score"`
}

func (d commentData) comment() Comment {
	author := d.Author
	if author == "[deleted]" {
		author = ""
	}
	return Comment{
		ID:     d.ID,
		Name:   d.Name,
		Author: author,
		Body:   d.Body,
		Score:  d.Score,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// apiResponse is the envelope returned by write endpoints
// (/api/comment, /api/editusertext).
type apiResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}
