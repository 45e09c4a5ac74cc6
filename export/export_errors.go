package export

import "errors"

var ErrUnrecognizedBackup = errors.New("file is not a backup of this application")

var ErrUnsupportedVersion = errors.New("unsupported backup version")

var ErrInvalidRange = errors.New("invalid backup range")

var ErrInvalidMode = errors.New("restore mode must be 'replace' or 'merge'")

var ErrInvalidSettings = errors.New("invalid backup settings")
