package errs

import "errors"

// Sentinel errors shared by the page loaders and the content API
var (
	// Content API client errors
	ErrAPIRequest = errors.New("content api request failed")
	ErrAPIStatus  = errors.New("content api returned an unexpected status")
	ErrAPIDecode  = errors.New("content api returned malformed json")

	// Content errors
	ErrContentNotFound = errors.New("content not found")

	// Locale errors
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
