// Package store persists computed layouts so they can be fetched later by
// ID, typically through the HTTP API. The only production backend is
// MongoDB; [NullStore] serves configurations that run without persistence.
package store

import (
	"context"

	"github.com/dominauta/padring/pkg/circuit"
)

// Store saves and retrieves layouts by ID.
type Store interface {
	// Save persists the layout and returns its ID, assigning one when the
	// layout has none.
	Save(ctx context.Context, l *circuit.Layout) (string, error)

	// Get fetches a layout by ID. Unknown IDs fail with a
	// LAYOUT_NOT_FOUND coded error.
	Get(ctx context.Context, id string) (*circuit.Layout, error)

	// Close releases the backend connection.
	Close(ctx context.Context) error
}

// NullStore discards saves and never finds anything.
type NullStore struct{}

func (NullStore) Save(_ context.Context, l *circuit.Layout) (string, error) {
	return l.ID, nil
}

func (NullStore) Get(_ context.Context, id string) (*circuit.Layout, error) {
	return nil, notFound(id)
}

func (NullStore) Close(context.Context) error { return nil }
