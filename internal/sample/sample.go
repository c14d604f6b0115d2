package sample

import (
	"math/rand"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
)

// DefaultBound is the gallery display cap per fetch.
const DefaultBound = 9

// Records returns a uniformly random permutation of records, truncated
// to bound when the input is larger. The input slice is left untouched.
// A bound < 0 means no cap.
func Records(rng *rand.Rand, records []apod.Record, bound int) []apod.Record {
	out := make([]apod.Record, len(records))
	copy(out, records)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	if bound >= 0 && len(out) > bound {
		out = out[:bound]
	}
	return out
}
