package bot

import (
	"fmt"
	"strings"

	"github.com/vmunix/parrot/internal/reddit"
)

// footer is appended to every comment the bot writes, so its comments
// can be recognized and so readers know what the number means.
const footer = "^(I am a bot. I use the word-level edit distance between titles to find related posts.)\n"

func nsfwMarker(p reddit.Post) string {
	if p.NSFW {
		return "[NSFW] "
	}
	return ""
}

// renderReply builds the comment posted under a parody post, pointing
// at the source post it parodies.
func renderReply(source reddit.Post, certainty float64) string {
	return fmt.Sprintf(
		"Relevant r/%s post: [%s%s](https://www.reddit.com%s)\n\nCertainty: %.2f%%\n\n%s",
		source.Subreddit, nsfwMarker(source), source.Title, source.Permalink,
		certainty*100, footer,
	)
}

// renderAggregate builds the comment maintained under a source post,
// listing every parody of it. posts must already be sorted by score
// descending; rendering is deterministic so body equality doubles as
// the reconciler's no-change check.
func renderAggregate(parodyFeed string, posts []reddit.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This post has been parodied on r/%s.\n\n", parodyFeed)
	fmt.Fprintf(&b, "Relevant r/%s posts:\n\n", parodyFeed)
	for _, p := range posts {
		fmt.Fprintf(&b, "[%s%s](https://www.reddit.com%s) by %s\n\n",
			nsfwMarker(p), p.Title, p.Permalink, p.Author)
	}
	b.WriteString(footer)
	return b.String()
}
