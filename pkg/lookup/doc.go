// Package lookup implements the referential-integrity collaborator used by
// content validation: given an entity kind and an id, does that record exist
// in persisted data?
//
// The package exposes a single Checker interface and several interchangeable
// implementations:
//
//   - PGChecker     – queries a PostgreSQL pool (pgx/v5) directly
//   - SQLChecker    – queries through database/sql with squirrel-built SQL
//   - CachedChecker – in-process expirable LRU in front of another Checker
//   - KVCachedChecker – shared key-value cache (Redis) in front of another Checker
//
// Entity references are standardized on lowercase singular names
// (lookup.EntityOrganization is "organization"); the table mapping is fixed
// inside the package so callers never pass storage-layer spellings around.
//
// All implementations are safe for concurrent use. Lookup failures are
// reported as errors wrapping ErrLookupFailed and are distinct from a
// negative answer: a missing row is (false, nil), an unreachable replica is
// (false, error).
//
// # Configuration
//
// Config is populated from environment variables via github.com/caarlos0/env
// and fed to Connect, which retries with backoff until the database becomes
// available.
package lookup
