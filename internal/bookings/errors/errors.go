package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrAlreadyExists = errors.New("booking record already exists")

	ErrTooManyFiles = errors.New("too many files attached")

	ErrFileTooLarge = errors.New("attached file exceeds the size limit")

	ErrDisallowedType = errors.New("only images and PDFs are allowed")
)
