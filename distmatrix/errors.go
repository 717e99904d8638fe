package distmatrix

import "errors"

// ErrTooFewObjects indicates fewer than 2 objects were supplied; the silent
// Build contract returns a nil Matrix for this case instead.
var ErrTooFewObjects = errors.New("distmatrix: fewer than two objects")
