// internal/adapters/out/identity/firebase_identity.go
package identity

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	userdom "travelia/internal/domain/user"
)

// FirebaseIdentity implements user.Identity on the Firebase Auth admin SDK.
// The role lives in the "role" custom claim; tokens without the claim are
// treated as customer.
type FirebaseIdentity struct {
	Auth *fbauth.Client
}

func NewFirebaseIdentity(auth *fbauth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{Auth: auth}
}

// Compile-time check
var _ userdom.Identity = (*FirebaseIdentity)(nil)

func (i *FirebaseIdentity) CreateUser(ctx context.Context, email, password string) (string, error) {
	if i.Auth == nil {
		return "", errors.New("firebase auth client is nil")
	}

	params := (&fbauth.UserToCreate{}).
		Email(strings.TrimSpace(email)).
		Password(password)

	rec, err := i.Auth.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return rec.UID, nil
}

func (i *FirebaseIdentity) SetRole(ctx context.Context, uid, role string) error {
	if i.Auth == nil {
		return errors.New("firebase auth client is nil")
	}
	return i.Auth.SetCustomUserClaims(ctx, uid, map[string]any{"role": role})
}

func (i *FirebaseIdentity) DeleteUser(ctx context.Context, uid string) error {
	if i.Auth == nil {
		return errors.New("firebase auth client is nil")
	}
	if err := i.Auth.DeleteUser(ctx, uid); err != nil {
		if fbauth.IsUserNotFound(err) {
			return userdom.ErrNotFound
		}
		return err
	}
	return nil
}

func (i *FirebaseIdentity) ListAccounts(ctx context.Context) ([]userdom.Account, error) {
	if i.Auth == nil {
		return nil, errors.New("firebase auth client is nil")
	}

	var out []userdom.Account
	it := i.Auth.Users(ctx, "")
	for {
		u, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		role := userdom.RoleCustomer
		if r, ok := u.CustomClaims["role"].(string); ok && strings.TrimSpace(r) != "" {
			role = r
		}
		out = append(out, userdom.Account{
			UID:   u.UID,
			Email: u.Email,
			Role:  role,
		})
	}
	return out, nil
}
