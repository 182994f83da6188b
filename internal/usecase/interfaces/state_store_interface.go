package interfaces

import "pesquisa_pbr/internal/store"

// IStateStore abstracts the in-memory state container every use case reads
// from and writes through. There is exactly one implementation
// (store.Store); the interface exists so use cases receive the container by
// constructor injection instead of reaching for ambient state.
type IStateStore interface {
	Dispatch(action store.Action) error
	State() store.State
}
