package core

// KVStorage is the persistent storage port.
//
// A synchronous key-value string store in the manner of browser local
// storage. The task collection is persisted under a single well-known key,
// so every write replaces the whole collection atomically (as atomic as the
// underlying store's write is).
type KVStorage interface {
	// Get returns the value for key. The second return is false when the
	// key is absent; absence is not an error.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
