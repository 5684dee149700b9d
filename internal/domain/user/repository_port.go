// internal/domain/user/repository_port.go
package user

import "context"

// ProfileRepository is the outbound port for the users profile collection.
type ProfileRepository interface {
	Get(ctx context.Context, uid string) (Profile, error)
	Create(ctx context.Context, p Profile) error
	Update(ctx context.Context, uid string, upd ProfileUpdate) error
	// SetRole rewrites the role mirror on the profile document.
	SetRole(ctx context.Context, uid, role string) error
	Delete(ctx context.Context, uid string) error
	// List returns all profiles, newest first.
	List(ctx context.Context) ([]Profile, error)
}

// Identity is the outbound port for the identity provider (auth records and
// role custom claims).
type Identity interface {
	CreateUser(ctx context.Context, email, password string) (uid string, err error)
	// SetRole writes the role custom claim. Existing sessions keep their old
	// claim until the client refreshes its token.
	SetRole(ctx context.Context, uid, role string) error
	DeleteUser(ctx context.Context, uid string) error
	ListAccounts(ctx context.Context) ([]Account, error)
}
