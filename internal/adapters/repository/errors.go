package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound         = errors.New("applicant not found")
	ErrInvalidApplicant = errors.New("invalid applicant")
)
