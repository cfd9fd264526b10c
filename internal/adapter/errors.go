package adapter

import "errors"

// ErrInvalidEncoding is returned for source files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")
