package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that a record was not found in the local store
	ErrRecordNotFound = errors.New("record not found")

	// ErrWriteNotFound indicates that a pending write was not found in the queue
	ErrWriteNotFound = errors.New("pending write not found")

	// ErrSessionNotFound indicates that no cached session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrUnknownCollection indicates a collection the schema does not know about
	ErrUnknownCollection = errors.New("unknown collection")
)
