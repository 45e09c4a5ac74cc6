package catalog

import "errors"

var ErrExtraNotFound = errors.New("extra not found")

var ErrInvalidExtra = errors.New("invalid extra")
