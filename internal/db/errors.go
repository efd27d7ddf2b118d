package db

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by another
	// user; callers must not distinguish the two.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateIdentity signals a username or email unique-constraint hit.
	ErrDuplicateIdentity = errors.New("username or email already exists")
)
