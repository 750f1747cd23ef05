//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/errors"
)

func TestMongoStore_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, uri, "padring_test")
	if err != nil {
		t.Fatalf("NewMongoStore() error: %v", err)
	}
	defer s.Close(ctx)

	l := &circuit.Layout{Device: "amp", Baseline: 22}
	id, err := s.Save(ctx, l)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if id == "" {
		t.Fatal("Save() should assign an ID")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Device != "amp" || got.Baseline != 22 {
		t.Errorf("Get() = %+v, want device amp, baseline 22", got)
	}

	_, err = s.Get(ctx, "does-not-exist")
	if errors.GetCode(err) != errors.ErrCodeLayoutNotFound {
		t.Errorf("Get(missing) code = %q, want %q", errors.GetCode(err), errors.ErrCodeLayoutNotFound)
	}
}
