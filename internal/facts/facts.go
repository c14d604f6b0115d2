package facts

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Shown in the fact strip while a fetch is in flight.
var bundled = []string{
	"Light from the Sun takes about 8 minutes and 20 seconds to reach Earth.",
	"A day on Venus is longer than its year.",
	"Neutron stars can spin hundreds of times per second.",
	"The Milky Way and Andromeda will begin merging in about 4.5 billion years.",
	"Olympus Mons on Mars is nearly three times the height of Everest.",
	"One million Earths could fit inside the Sun.",
	"Saturn's rings are mostly water ice, some pieces as small as grains of sand.",
	"The footprints on the Moon will likely last millions of years.",
	"Jupiter's Great Red Spot has been storming for at least 190 years.",
	"There are more stars in the universe than grains of sand on Earth's beaches.",
	"A spoonful of neutron star material would weigh about a billion tons.",
	"The observable universe is about 93 billion light-years across.",
	"Space is not completely empty: about one atom per cubic centimeter drifts between stars.",
	"The Sun loses around four million tons of mass every second.",
	"Proxima Centauri, our nearest stellar neighbor, is 4.2 light-years away.",
}

// Random picks a fact for the loading strip.
func Random(rng *rand.Rand) string {
	return bundled[rng.Intn(len(bundled))]
}

// Headline is one newsroom item for the home screen.
type Headline struct {
	Title string
	Link  string
}

type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Headlines fetches the latest items from an RSS/Atom feed, newest
// first as published by the feed.
func (f *Fetcher) Headlines(ctx context.Context, feedURL string, limit int) ([]Headline, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching headlines: %w", err)
	}

	out := make([]Headline, 0, limit)
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}
		out = append(out, Headline{
			Title: truncate(stripHTML(item.Title), 80),
			Link:  item.Link,
		})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
