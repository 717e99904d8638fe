package interdist

import "errors"

// ErrEmptyCluster indicates one of the two index lists was empty; the
// silent Distance contract returns 0 for this case instead.
var ErrEmptyCluster = errors.New("interdist: empty cluster")

// ErrIndexOutOfRange indicates an index list referenced an object outside
// [0, N); the silent Distance contract returns 0 for this case instead.
var ErrIndexOutOfRange = errors.New("interdist: index out of range")

// ErrUnknownMethod indicates an unrecognized method tag; the silent
// Distance contract returns 0 for this case instead.
var ErrUnknownMethod = errors.New("interdist: unknown method")
