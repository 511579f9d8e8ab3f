package dynaquery

import (
	"context"

	"github.com/rs/zerolog"
)

// cursorState tracks the traversal state machine.
type cursorState int

const (
	stateNotStarted cursorState = iota
	stateFetchingPage
	stateEmittingItems
	stateDone
)

// Cursor is a lazy, forward-only traversal over every page of a query or
// scan. Each Next call yields the next decoded item, fetching further pages
// on demand; exactly one request is issued per page, and no request is
// outstanding between Next calls.
//
//	cursor := query.All()
//	for cursor.Next(ctx) {
//	    resource := cursor.Resource()
//	    // ...
//	}
//	if err := cursor.Err(); err != nil {
//	    // ...
//	}
//
// A Cursor drains as it is consumed and is not restartable; a fresh
// traversal requires a fresh Cursor from the operation's All method. It must
// not be consumed from multiple goroutines.
type Cursor[T any] struct {
	build  func() (Params, error)
	fetch  func(context.Context, Params) (*Result[T], error)
	logger zerolog.Logger

	state   cursorState
	params  Params
	page    *Result[T]
	current T
	err     error

	pages    int
	count    int
	scanned  int
	lastPage bool
}

func newCursor[T any](
	logger zerolog.Logger,
	build func() (Params, error),
	fetch func(context.Context, Params) (*Result[T], error),
) *Cursor[T] {
	return &Cursor[T]{
		build:  build,
		fetch:  fetch,
		logger: logger,
	}
}

// Next advances the cursor to the next item, issuing a page request whenever
// the current page is exhausted and a continuation key remains. It returns
// false when the traversal completes or fails; check Err to tell the two
// apart. A failed or completed cursor stays stopped, and a fetch failure
// leaves all progress counters observable.
func (c *Cursor[T]) Next(ctx context.Context) bool {
	for {
		switch c.state {
		case stateNotStarted:
			// Snapshot the operation parameters for the whole traversal.
			// Builder mutations after this point affect only new cursors.
			params, err := c.build()
			if err != nil {
				c.fail(err)
				return false
			}
			c.params = params
			c.state = stateFetchingPage

		case stateFetchingPage:
			c.logger.Debug().
				Str("table", c.params.TableName).
				Int("page", c.pages).
				Msg("fetching page")

			page, err := c.fetch(ctx, c.params)
			if err != nil {
				c.fail(err)
				return false
			}

			c.pages++
			c.count += int(page.Count())
			c.scanned += int(page.ScannedCount())
			c.lastPage = page.LastEvaluatedKey() == nil
			c.page = page
			c.state = stateEmittingItems

		case stateEmittingItems:
			if c.page.Next() {
				c.current = c.page.Resource()
				return true
			}
			if err := c.page.Err(); err != nil {
				c.fail(err)
				return false
			}
			if c.lastPage {
				c.logger.Debug().
					Int("pages", c.pages).
					Int("count", c.count).
					Int("scanned", c.scanned).
					Msg("traversal complete")
				c.state = stateDone
				return false
			}
			// An empty page with a continuation key loops straight back
			// into another fetch; only a missing key terminates.
			c.params.ExclusiveStartKey = c.page.LastEvaluatedKey()
			c.state = stateFetchingPage

		default: // stateDone
			return false
		}
	}
}

func (c *Cursor[T]) fail(err error) {
	c.err = err
	c.state = stateDone
}

// Resource returns the item yielded by the most recent successful Next call.
func (c *Cursor[T]) Resource() T { return c.current }

// Err returns the error that stopped the traversal, if any. Items yielded
// before the failure remain valid.
func (c *Cursor[T]) Err() error { return c.err }

// Pages returns the number of page requests issued so far.
func (c *Cursor[T]) Pages() int { return c.pages }

// Count returns the total number of items returned across fetched pages.
func (c *Cursor[T]) Count() int { return c.count }

// Scanned returns the total number of records the backend examined across
// fetched pages.
func (c *Cursor[T]) Scanned() int { return c.scanned }

// LastPage reports whether the most recently fetched page was the final one.
func (c *Cursor[T]) LastPage() bool { return c.lastPage }

// StartKey returns the continuation key the cursor last threaded into a
// request, or nil if the traversal is still on its first page. After a fetch
// failure it identifies the last successfully completed position, suitable
// for resuming with the operation's StartKey method.
func (c *Cursor[T]) StartKey() Item { return c.params.ExclusiveStartKey }
