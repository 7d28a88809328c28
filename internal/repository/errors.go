package repository

import "errors"

// ErrStoreIO is returned when the submissions file cannot be read or written.
var ErrStoreIO = errors.New("submission store i/o failed")
