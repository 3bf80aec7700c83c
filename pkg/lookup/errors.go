package lookup

import "errors"

var (
	// ErrUnknownEntity is returned when a checker has no table mapping for the requested entity.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrLookupFailed wraps storage errors raised while answering an existence check.
	ErrLookupFailed = errors.New("existence lookup failed")

	// ErrCacheMiss is returned by a KVStore when the key is not cached.
	ErrCacheMiss = errors.New("cache miss")

	// ErrFailedToParseDBConfig is returned when the connection string cannot be parsed.
	ErrFailedToParseDBConfig = errors.New("failed to parse database config")

	// ErrDatabaseNotReady is returned when the database is unreachable after all retry attempts.
	ErrDatabaseNotReady = errors.New("database not ready")
)
