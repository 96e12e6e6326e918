package repository

// CacheRepository is the memoization port used by derived read-only
// queries. Implementations must be safe for concurrent use.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
