package hierarchical

import "errors"

// ErrTooFewObjects indicates fewer than 2 objects were supplied; the
// silent Cluster contract returns an empty Tree for this case instead.
var ErrTooFewObjects = errors.New("hierarchical: fewer than two objects")
