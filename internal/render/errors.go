package render

import "errors"

// ErrWrite wraps any failure to create or write an artifact file.
var ErrWrite = errors.New("write artifact")
