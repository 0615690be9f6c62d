package domain

import (
	"errors"
	"strconv"
)

var (
	// ErrNoLiquidity is returned when a best bid/offer is requested for a
	// book with an empty side.
	ErrNoLiquidity = errors.New("no liquidity")

	// ErrUnknownInstrument is returned when a CUSIP is not present in the
	// reference data.
	ErrUnknownInstrument = errors.New("unknown instrument")

	// ErrUnknownSector is returned when a sector name is not present in the
	// reference data.
	ErrUnknownSector = errors.New("unknown sector")

	// ErrConfigNotFound is returned when the configuration file is missing.
	ErrConfigNotFound = errors.New("configuration not found")
)

// FeedError wraps a parse failure for a single feed record. Connectors log
// it and skip the record; it never aborts the remaining input stream.
type FeedError struct {
	Feed string // feed name, e.g. "prices"
	Line int    // 1-based line number in the input
	Err  error
}

func (e *FeedError) Error() string {
	return e.Feed + " feed, line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// NewFeedError wraps err with the feed name and line it occurred on.
func NewFeedError(feed string, line int, err error) *FeedError {
	return &FeedError{Feed: feed, Line: line, Err: err}
}
