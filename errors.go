package srlog

import "github.com/pkg/errors"

// ErrInvalidArgument is returned by setters given an out-of-range level,
// unknown option bits or a nil target. The previous configuration is kept.
// Returned errors wrap it; match with errors.Is.
var ErrInvalidArgument = errors.New("srlog: invalid argument")
