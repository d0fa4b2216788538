package services

import "errors"

// ErrNotFound marks lookups of unknown staff ids or QR tokens. Handlers
// map it to a 404; anything else that escapes an update is a 500.
var ErrNotFound = errors.New("not found")
