package store

// State describes where a container sits in its per-session lifecycle.
type State string

const (
	// StateEmpty means no session: the mirror is empty and nothing is in flight.
	StateEmpty State = "empty"
	// StateLoading means a fetch of the remote snapshot is in flight.
	StateLoading State = "loading"
	// StateSynced means the mirror reflects the last successful fetch.
	StateSynced State = "synced"
	// StateMutating means an add, remove or clear is in flight.
	StateMutating State = "mutating"
)
