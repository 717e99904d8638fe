package som

import "errors"

// ErrTooFewObjects indicates fewer than 2 objects were supplied; the
// silent Cluster contract returns without training for this case instead.
var ErrTooFewObjects = errors.New("som: fewer than two objects")
