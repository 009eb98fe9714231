package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrNotLoggedIn = fmt.Errorf("not logged in")
	ErrAuthFailed  = fmt.Errorf("authentication failed")
	ErrTimeout     = fmt.Errorf("operation timed out")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrSaveFailed         = fmt.Errorf("playlist save failed")

	// Offline cache errors
	ErrCacheMiss   = fmt.Errorf("cache miss")
	ErrNotCachable = fmt.Errorf("request not cachable")

	// Playback errors
	ErrNoPreview      = fmt.Errorf("no preview available")
	ErrPlaybackFailed = fmt.Errorf("playback failed")

	// Input validation errors
	ErrEmptyInput      = fmt.Errorf("empty input")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
