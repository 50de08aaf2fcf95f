package admit

import "errors"

// Sentinel kinds for admission errors.
var (
	ErrBadPattern = errors.New("invalid domain pattern")
	ErrBadAddress = errors.New("address does not match organizational domain")
	ErrNotAllowed = errors.New("address not on allowlist")
)
