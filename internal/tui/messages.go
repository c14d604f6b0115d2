package tui

import (
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/facts"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/update"
)

// Messages delivered to the app by its commands.

// recordsMsg carries the outcome of a gallery fetch. reqRange is the
// range the fetch was issued for, so stale replies can be told apart
// from the one the user is waiting on.
type recordsMsg struct {
	records  []apod.Record
	reqRange apod.DateRange
	err      error
}

// headlinesMsg carries space news headlines for the home view. Failures
// are silent, the strip just stays empty.
type headlinesMsg struct {
	headlines []facts.Headline
}

// updateMsg reports a newer released version, if any.
type updateMsg struct {
	result *update.Result
}

// openedMsg reports the outcome of launching the browser.
type openedMsg struct {
	err error
}
