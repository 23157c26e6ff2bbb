package domain

import "errors"

var (
	// ErrUnauthorized indicates a missing or expired session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyConfession indicates the user submitted an empty confession.
	ErrEmptyConfession = errors.New("confession cannot be empty")

	// ErrConfessionTooLong indicates the confession exceeds the character limit.
	ErrConfessionTooLong = errors.New("confession exceeds character limit")

	// ErrEmptyComment indicates the user submitted an empty comment.
	ErrEmptyComment = errors.New("comment cannot be empty")
)
