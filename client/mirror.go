package client

import (
	"context"
	"slices"
	"sync"
)

type MutationState int

const (
	MutationPending MutationState = iota
	MutationConfirmed
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationPending:
		return "pending"
	case MutationConfirmed:
		return "confirmed"
	case MutationRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

type MutationKind string

const (
	MutationAddToCart      MutationKind = "add-to-cart"
	MutationUpdateQuantity MutationKind = "update-quantity"
	MutationRemoveFromCart MutationKind = "remove-from-cart"
	MutationClearCart      MutationKind = "clear-cart"
	MutationAddFavorite    MutationKind = "add-favorite"
	MutationRemoveFavorite MutationKind = "remove-favorite"
)

// Mutation records one local change and what the server made of it.
type Mutation struct {
	Kind      MutationKind
	ProductID string
	Quantity  int
	State     MutationState
	// Err is the server error for rolled-back mutations, or the re-fetch
	// error for confirmed ones whose mirror could not be refreshed.
	Err error
}

// mirror holds a local copy of a server collection. Mutations are applied
// locally first and then sent to the server one at a time; the copy is then
// re-fetched from the server whatever the outcome.
type mirror[T any] struct {
	fetch func(ctx context.Context) ([]T, error)

	mutating sync.Mutex

	mu      sync.RWMutex
	items   []T
	history []Mutation
}

func (m *mirror[T]) snapshot() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

func (m *mirror[T]) setItems(items []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

func (m *mirror[T]) refresh(ctx context.Context) error {
	items, err := m.fetch(ctx)
	if err != nil {
		return err
	}
	m.setItems(items)
	return nil
}

// record appends mut to the history and returns its position.
func (m *mirror[T]) record(mut Mutation) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, mut)
	return len(m.history) - 1
}

func (m *mirror[T]) settle(i int, mut Mutation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[i] = mut
}

// mutations lists the history oldest first. The entry of an in-flight
// mutation is MutationPending until the server answers.
func (m *mirror[T]) mutations() []Mutation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.history)
}

// mutate applies local to the mirror, runs remote, and reconciles. On remote
// failure the mirror is re-fetched; if that also fails the pre-mutation
// snapshot is restored.
func (m *mirror[T]) mutate(ctx context.Context, mut Mutation, local func([]T) []T, remote func(context.Context) error) (Mutation, error) {
	m.mutating.Lock()
	defer m.mutating.Unlock()

	before := m.snapshot()
	mut.State = MutationPending
	i := m.record(mut)
	m.setItems(local(slices.Clone(before)))

	if err := remote(ctx); err != nil {
		mut.State = MutationRolledBack
		mut.Err = err
		if refreshErr := m.refresh(ctx); refreshErr != nil {
			m.setItems(before)
		}
		m.settle(i, mut)
		return mut, err
	}

	mut.State = MutationConfirmed
	if err := m.refresh(ctx); err != nil {
		mut.Err = err
	}
	m.settle(i, mut)
	return mut, nil
}
