// Package match selects the best source-feed candidate for a parody
// post and turns the similarity numbers into a match decision.
package match

import (
	"math"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/parrot/internal/reddit"
	"github.com/vmunix/parrot/internal/title"
)

// Result of scanning a candidate listing. Post is nil when the listing
// was empty; Distance is then the untouched sentinel and must not be
// fed into any score.
type Result struct {
	Post     *reddit.Post
	Distance int
}

// Select scans candidates in listing order and returns the one whose
// normalized title has the smallest edit distance to target. Ties keep
// the earliest candidate.
func Select(target []string, candidates []reddit.Post) Result {
	best := Result{Distance: math.MaxInt}
	for i := range candidates {
		d := title.Distance(target, title.Normalize(candidates[i].Title))
		if d < best.Distance {
			best.Distance = d
			best.Post = &candidates[i]
		}
	}
	return best
}

// Selector holds the decision thresholds for one feed pair.
type Selector struct {
	SimilarityThreshold float64
	CertaintyThreshold  float64
}

// Report carries the decision and the numbers behind it, for logging.
// CharSimilarity is a character-level Jaro-Winkler over the joined
// normalized titles; it is a diagnostic only and never influences the
// decision.
type Report struct {
	Distance       int
	MaxLen         int
	Overlap        float64
	Certainty      float64
	CharSimilarity float64
	Match          bool
}

// Evaluate scores a target title against the selected candidate title.
// distance is the edit distance Select already computed for the pair.
// A match requires the overlap gate to pass and the certainty to exceed
// the threshold; crosspost and same-author vetoes are applied by the
// caller, which has the feed access they need.
func (s Selector) Evaluate(target, candidate []string, distance int) Report {
	similar, overlap := title.Overlap(target, candidate, s.SimilarityThreshold)
	maxLen := max(len(target), len(candidate))

	r := Report{
		Distance: distance,
		MaxLen:   maxLen,
		Overlap:  overlap,
		CharSimilarity: float64(edlib.JaroWinklerSimilarity(
			strings.Join(target, " "), strings.Join(candidate, " "))),
	}
	if !similar {
		return r
	}
	r.Certainty = title.Certainty(overlap, distance, maxLen)
	r.Match = r.Certainty > s.CertaintyThreshold
	return r
}
