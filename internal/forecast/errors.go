package forecast

import "errors"

// ErrNoTideEvents means the page had a day section but no usable tide points
var ErrNoTideEvents = errors.New("no tide events found")
