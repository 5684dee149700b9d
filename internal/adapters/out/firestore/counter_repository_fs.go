// internal/adapters/out/firestore/counter_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tourdom "travelia/internal/domain/tour"
)

const (
	countersCollection = "counters"
	tourCounterDoc     = "counter_tours"
)

// CounterRepositoryFS implements tour.IDAllocator over a single counter
// document, serialized by Firestore's native transaction. Transaction
// conflicts are retried by the client library itself.
type CounterRepositoryFS struct {
	Client *firestore.Client
}

func NewCounterRepositoryFS(client *firestore.Client) *CounterRepositoryFS {
	return &CounterRepositoryFS{Client: client}
}

// Compile-time check
var _ tourdom.IDAllocator = (*CounterRepositoryFS)(nil)

func (r *CounterRepositoryFS) NextID(ctx context.Context) (int64, error) {
	if r.Client == nil {
		return 0, errors.New("firestore client is nil")
	}

	ref := r.Client.Collection(countersCollection).Doc(tourCounterDoc)

	var next int64
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		exists := true
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			exists = false
		}

		var current int64
		if exists {
			var c struct {
				Current int64 `firestore:"current"`
			}
			if err := snap.DataTo(&c); err != nil {
				return err
			}
			current = c.Current
		}

		next = nextCounterValue(current, exists)
		return tx.Set(ref, map[string]any{"current": next})
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// nextCounterValue decides the id handed out for a given counter state: the
// floor when the counter does not exist yet, current+1 otherwise, clamped up
// to the floor so corrupted counter state can never produce an id below it.
func nextCounterValue(current int64, exists bool) int64 {
	if !exists {
		return tourdom.MinTourID
	}
	next := current + 1
	if next < tourdom.MinTourID {
		next = tourdom.MinTourID
	}
	return next
}
