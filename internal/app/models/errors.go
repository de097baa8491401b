package models

import "errors"

// Domain specific errors. The request layer maps ErrUserNotFound to a 404;
// the other two propagate to whoever awaits the failed task.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProviderUnavailable = errors.New("geolocation provider unavailable")
	ErrOracleUnavailable   = errors.New("reward oracle unavailable")
)
