// Package ledger derives per-account transaction views from a flat list of
// fund transfers and holds the account addressing and amount rules shared by
// the API server and the dashboard client.
package ledger

import (
	"errors"
	"strings"
)

// Direction tags a derived row relative to the selected account
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Filter restricts a ledger view to one direction or keeps both
type Filter string

const (
	FilterAll Filter = "all"
	FilterIn  Filter = "in"
	FilterOut Filter = "out"
)

var ErrInvalidFilter = errors.New("direction filter must be one of all, in, out")

// ParseFilter parses a direction filter. An empty string means FilterAll.
func ParseFilter(raw string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIn:
		return FilterIn, nil
	case FilterOut:
		return FilterOut, nil
	default:
		return "", ErrInvalidFilter
	}
}

// Keeps reports whether a row with direction d passes the filter
func (f Filter) Keeps(d Direction) bool {
	switch f {
	case FilterIn:
		return d == DirectionIn
	case FilterOut:
		return d == DirectionOut
	default:
		return true
	}
}
