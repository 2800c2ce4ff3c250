package difference

import "errors"

// ErrUnknownMethod is returned for method values outside the defined
// set.
var ErrUnknownMethod = errors.New("difference: unknown method")
