// internal/adapters/out/firestore/tour_repository_fs.go
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

// TourRepositoryFS is the Firestore implementation of tour.Repository.
// Uses the "tours" collection; the document key is the stringified id_tour.
type TourRepositoryFS struct {
	Client *firestore.Client
}

func NewTourRepositoryFS(client *firestore.Client) *TourRepositoryFS {
	return &TourRepositoryFS{Client: client}
}

func (r *TourRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("tours")
}

// Compile-time check
var _ tourdom.Repository = (*TourRepositoryFS)(nil)

// ========================
// Queries
// ========================

func (r *TourRepositoryFS) GetByID(ctx context.Context, id string) (tourdom.Tour, error) {
	if r.Client == nil {
		return tourdom.Tour{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return tourdom.Tour{}, tourdom.ErrNotFound
	}

	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return tourdom.Tour{}, tourdom.ErrNotFound
		}
		return tourdom.Tour{}, err
	}

	return docToTour(doc)
}

func (r *TourRepositoryFS) Exists(ctx context.Context, id string) (bool, error) {
	if r.Client == nil {
		return false, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}

	_, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *TourRepositoryFS) List(ctx context.Context) ([]tourdom.Tour, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []tourdom.Tour
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := docToTour(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TourRepositoryFS) ListLatest(ctx context.Context, limit int) ([]tourdom.Tour, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().OrderBy("created_at", firestore.Desc).Limit(limit).Documents(ctx)
	defer it.Stop()

	var out []tourdom.Tour
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := docToTour(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ========================
// Commands
// ========================

func (r *TourRepositoryFS) Create(ctx context.Context, t tourdom.Tour) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if strings.TrimSpace(t.ID) == "" {
		return tourdom.ErrInvalidID
	}
	_, err := r.col().Doc(t.ID).Set(ctx, t)
	return err
}

func (r *TourRepositoryFS) UpdateMain(ctx context.Context, id string, upd tourdom.MainUpdate) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	updates := []firestore.Update{
		{Path: "name_tour", Value: upd.Name},
		{Path: "price_tour", Value: upd.Price},
		{Path: "duration_tour", Value: upd.Duration},
		{Path: "location_tour", Value: upd.Location},
		{Path: "updated_at", Value: upd.UpdatedAt},
	}
	if upd.Image != nil {
		updates = append(updates, firestore.Update{Path: "image_tour", Value: *upd.Image})
	}

	_, err := r.col().Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return tourdom.ErrNotFound
	}
	return err
}

func (r *TourRepositoryFS) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// ========================
// Helpers
// ========================

func docToTour(doc *firestore.DocumentSnapshot) (tourdom.Tour, error) {
	var t tourdom.Tour
	if err := doc.DataTo(&t); err != nil {
		return tourdom.Tour{}, err
	}
	t.ID = doc.Ref.ID
	return t, nil
}
