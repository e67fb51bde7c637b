package store

import "errors"

var (
	ErrNotFound = errors.New("store: resource not found")
	ErrNoUserID = errors.New("store: user id is required")
)
