// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "travelia/internal/domain/user"
)

// UserRepositoryFS is the Firestore implementation of user.ProfileRepository.
// Uses the "users" collection; the document key is the Firebase UID.
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

// Compile-time check
var _ userdom.ProfileRepository = (*UserRepositoryFS)(nil)

func (r *UserRepositoryFS) Get(ctx context.Context, uid string) (userdom.Profile, error) {
	if r.Client == nil {
		return userdom.Profile{}, errors.New("firestore client is nil")
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return userdom.Profile{}, userdom.ErrNotFound
	}

	doc, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return userdom.Profile{}, userdom.ErrNotFound
		}
		return userdom.Profile{}, err
	}

	var p userdom.Profile
	if err := doc.DataTo(&p); err != nil {
		return userdom.Profile{}, err
	}
	p.UID = doc.Ref.ID
	return p, nil
}

func (r *UserRepositoryFS) Create(ctx context.Context, p userdom.Profile) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if strings.TrimSpace(p.UID) == "" {
		return userdom.ErrInvalidUID
	}
	_, err := r.col().Doc(p.UID).Set(ctx, p)
	return err
}

func (r *UserRepositoryFS) Update(ctx context.Context, uid string, upd userdom.ProfileUpdate) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	var updates []firestore.Update
	add := func(path string, v *string) {
		if v != nil {
			updates = append(updates, firestore.Update{Path: path, Value: *v})
		}
	}
	add("firstName", upd.FirstName)
	add("lastName", upd.LastName)
	add("phone", upd.Phone)
	add("city", upd.City)
	add("country", upd.Country)
	add("avatar", upd.Avatar)

	if len(updates) == 0 {
		return nil
	}

	_, err := r.col().Doc(uid).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return userdom.ErrNotFound
	}
	return err
}

func (r *UserRepositoryFS) SetRole(ctx context.Context, uid, role string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if status.Code(err) == codes.NotFound {
		return userdom.ErrNotFound
	}
	return err
}

func (r *UserRepositoryFS) Delete(ctx context.Context, uid string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}

func (r *UserRepositoryFS) List(ctx context.Context) ([]userdom.Profile, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []userdom.Profile
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p userdom.Profile
		if err := doc.DataTo(&p); err != nil {
			return nil, err
		}
		p.UID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}
