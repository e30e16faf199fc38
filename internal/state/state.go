package state

import "sync"

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	STOPPED
	FAILED
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case STOPPED:
		return "stopped"
	case FAILED:
		return "failed"
	}
	return "unknown"
}

type State struct {
	Phase  Phase
	Frames int
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) AddFrame() {
	store.mu.Lock()
	store.state.Frames++
	store.mu.Unlock()
}
