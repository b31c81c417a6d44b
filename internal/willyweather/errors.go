package willyweather

import "errors"

// Sentinel errors so callers can use errors.Is
var (
	ErrNoTideData = errors.New("no tide data found")
	ErrBadStatus  = errors.New("unexpected HTTP status")
)
