package shiftclose

import "errors"

var ErrCloseNotFound = errors.New("shift close not found")

var ErrMissingOperator = errors.New("operator name is required")
