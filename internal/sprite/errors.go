package sprite

import "errors"

// ErrNotImplemented is returned by entry points that exist only for
// compatibility and by behavior that is declared but undefined.
var ErrNotImplemented = errors.New("not implemented")
