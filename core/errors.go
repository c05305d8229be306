package core

import "errors"

// Task errors
var (
	ErrTaskNotFound    = errors.New("task not found")           // 404 Not Found
	ErrTitleRequired   = errors.New("task title is required")   // 400 Bad Request
	ErrInvalidStatus   = errors.New("invalid task status")      // 400 Bad Request
	ErrInvalidPriority = errors.New("invalid task priority")    // 400 Bad Request
)

// Authorization errors
var (
	ErrNotAllowed = errors.New("operation not permitted for this role") // 403 Forbidden
)

// Storage errors
var (
	ErrStoragePersist = errors.New("failed to persist task collection") // 500
)

// Cache errors
var (
	ErrCacheNotFound = errors.New("claims not found in cache")
)

// Config errors (server-side configuration)
var (
	ErrStorageRequired = errors.New("storage adapter is required") // 500
)
