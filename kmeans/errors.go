package kmeans

import "errors"

// ErrTooFewElements indicates fewer objects than requested clusters; the
// silent Cluster contract returns a zero-valued Result with Found==0 for
// this case instead.
var ErrTooFewElements = errors.New("kmeans: fewer objects than requested clusters")
