package models

import "errors"

// Error kinds shared across the collection core. Batch operations match
// these with errors.Is and drop the offending item; explicit single-target
// operations surface them to the user.
var (
	ErrNotFound             = errors.New("path does not exist")
	ErrNotAFile             = errors.New("path is not a regular file")
	ErrUnsupportedExtension = errors.New("unsupported extension")
	ErrNotListed            = errors.New("hash not in collection")
	ErrInvalidTag           = errors.New("invalid tag")
	ErrEmptyTags            = errors.New("tags are required")
	ErrMisconfigured        = errors.New("misconfigured")
)
