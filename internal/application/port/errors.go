package port

import "errors"

// ErrNotConnected is returned by host adapters when no browser is attached.
var ErrNotConnected = errors.New("browser not connected")
