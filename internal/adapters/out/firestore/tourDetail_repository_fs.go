// internal/adapters/out/firestore/tourDetail_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tourdom "travelia/internal/domain/tour"
)

// deleteBatchSize stays below Firestore's 500-mutation batch cap.
const deleteBatchSize = 400

// TourDetailRepositoryFS is the Firestore implementation of
// tour.DetailRepository over the tours/{id}/tours_details sub-collection.
type TourDetailRepositoryFS struct {
	Client *firestore.Client
}

func NewTourDetailRepositoryFS(client *firestore.Client) *TourDetailRepositoryFS {
	return &TourDetailRepositoryFS{Client: client}
}

func (r *TourDetailRepositoryFS) col(tourID string) *firestore.CollectionRef {
	return r.Client.Collection("tours").Doc(tourID).Collection("tours_details")
}

// Compile-time check
var _ tourdom.DetailRepository = (*TourDetailRepositoryFS)(nil)

// ========================
// Queries
// ========================

func (r *TourDetailRepositoryFS) ListByTour(ctx context.Context, tourID string) ([]tourdom.Detail, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col(tourID).Documents(ctx)
	defer it.Stop()

	var out []tourdom.Detail
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var d tourdom.Detail
		if err := doc.DataTo(&d); err != nil {
			return nil, err
		}
		d.ID = doc.Ref.ID
		out = append(out, d)
	}
	return out, nil
}

func (r *TourDetailRepositoryFS) IDs(ctx context.Context, tourID string) ([]string, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	// Select() fetches no field data; only document refs come back.
	it := r.col(tourID).Select().Documents(ctx)
	defer it.Stop()

	var ids []string
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}

// ========================
// Commands
// ========================

func (r *TourDetailRepositoryFS) CreateBatch(ctx context.Context, tourID string, details []tourdom.Detail) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if len(details) == 0 {
		return nil
	}

	b := r.Client.Batch()
	for _, d := range details {
		b.Set(r.col(tourID).NewDoc(), d)
	}
	_, err := b.Commit(ctx)
	return err
}

func (r *TourDetailRepositoryFS) Add(ctx context.Context, tourID string, d tourdom.Detail) (string, error) {
	if r.Client == nil {
		return "", errors.New("firestore client is nil")
	}
	ref, _, err := r.col(tourID).Add(ctx, d)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *TourDetailRepositoryFS) Update(ctx context.Context, tourID, detailID string, d tourdom.Detail) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return tourdom.ErrInvalidID
	}

	_, err := r.col(tourID).Doc(detailID).Set(ctx, d)
	if status.Code(err) == codes.NotFound {
		return tourdom.ErrNotFound
	}
	return err
}

func (r *TourDetailRepositoryFS) Delete(ctx context.Context, tourID, detailID string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col(tourID).Doc(detailID).Delete(ctx)
	return err
}

// DeleteAll removes the whole sub-collection in committed batches. Every
// batch commit is awaited; the caller deletes the parent only afterwards.
func (r *TourDetailRepositoryFS) DeleteAll(ctx context.Context, tourID string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	it := r.col(tourID).Select().Documents(ctx)
	defer it.Stop()

	b := r.Client.Batch()
	count := 0

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}
		b.Delete(doc.Ref)
		count++
		if count%deleteBatchSize == 0 {
			if _, err := b.Commit(ctx); err != nil {
				return err
			}
			b = r.Client.Batch()
		}
	}
	if count%deleteBatchSize != 0 {
		if _, err := b.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}
