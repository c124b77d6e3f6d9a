package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrSourceUnreadable    = errors.New("source file could not be read")
	ErrResponseMalformed   = errors.New("model response could not be parsed")
)
