// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	userdom "travelia/internal/domain/user"
)

// TempPasswordMailer delivers the generated temporary password when an admin
// creates an account on someone's behalf. Optional: a nil mailer skips mail.
type TempPasswordMailer interface {
	SendTempPassword(ctx context.Context, toEmail, tempPassword string) error
}

// PasswordGenerator returns a fresh temporary password.
type PasswordGenerator func() string

type UserUsecase struct {
	identity userdom.Identity
	profiles userdom.ProfileRepository
	mailer   TempPasswordMailer
	genPass  PasswordGenerator
	now      func() time.Time
}

func NewUserUsecase(
	identity userdom.Identity,
	profiles userdom.ProfileRepository,
	mailer TempPasswordMailer,
	genPass PasswordGenerator,
) *UserUsecase {
	return &UserUsecase{
		identity: identity,
		profiles: profiles,
		mailer:   mailer,
		genPass:  genPass,
		now:      time.Now,
	}
}

// ========================
// Auth operations
// ========================

// Register creates an auth record and stamps the role claim. Role defaults
// to customer.
func (u *UserUsecase) Register(ctx context.Context, email, password, role string) (userdom.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return userdom.Account{}, userdom.ErrInvalidEmail
	}
	if strings.TrimSpace(role) == "" {
		role = userdom.RoleCustomer
	}
	if !userdom.ValidRole(role) {
		return userdom.Account{}, userdom.ErrInvalidRole
	}

	uid, err := u.identity.CreateUser(ctx, email, password)
	if err != nil {
		return userdom.Account{}, err
	}
	if err := u.identity.SetRole(ctx, uid, role); err != nil {
		return userdom.Account{}, err
	}

	return userdom.Account{UID: uid, Email: email, Role: role}, nil
}

// ListAccounts returns every identity-provider user with its role claim.
func (u *UserUsecase) ListAccounts(ctx context.Context) ([]userdom.Account, error) {
	return u.identity.ListAccounts(ctx)
}

// ========================
// Profile operations
// ========================

// CheckOrCreate lazily creates the profile mirror on first client login.
// Returns true when a new profile was created.
func (u *UserUsecase) CheckOrCreate(ctx context.Context, uid, email string) (bool, error) {
	uid = strings.TrimSpace(uid)
	email = strings.TrimSpace(email)
	if uid == "" {
		return false, userdom.ErrInvalidUID
	}
	if email == "" {
		return false, userdom.ErrInvalidEmail
	}

	if _, err := u.profiles.Get(ctx, uid); err == nil {
		return false, nil
	} else if err != userdom.ErrNotFound {
		return false, err
	}

	p := userdom.Profile{
		UID:       uid,
		Email:     email,
		Role:      userdom.RoleCustomer,
		CreatedAt: u.now().UTC(),
	}
	if err := u.profiles.Create(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

func (u *UserUsecase) Profile(ctx context.Context, uid string) (userdom.Profile, error) {
	return u.profiles.Get(ctx, strings.TrimSpace(uid))
}

func (u *UserUsecase) UpdateProfile(ctx context.Context, uid string, upd userdom.ProfileUpdate) (userdom.Profile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return userdom.Profile{}, userdom.ErrInvalidUID
	}
	if err := u.profiles.Update(ctx, uid, upd); err != nil {
		return userdom.Profile{}, err
	}
	return u.profiles.Get(ctx, uid)
}

func (u *UserUsecase) ListProfiles(ctx context.Context) ([]userdom.Profile, error) {
	return u.profiles.List(ctx)
}

// ========================
// Admin operations
// ========================

// UpdateRole writes the role to the identity provider's custom claims and
// then mirrors it on the profile document. The two writes are not
// transactional; the order (claims first) means a retry after a partial
// failure converges both stores.
func (u *UserUsecase) UpdateRole(ctx context.Context, uid, role string) error {
	uid = strings.TrimSpace(uid)
	role = strings.TrimSpace(role)
	if uid == "" {
		return userdom.ErrInvalidUID
	}
	if !userdom.ValidRole(role) {
		return userdom.ErrInvalidRole
	}

	if err := u.identity.SetRole(ctx, uid, role); err != nil {
		return err
	}
	if err := u.profiles.SetRole(ctx, uid, role); err != nil {
		log.Printf("[user.uc] WARN: role claim written but profile mirror failed uid=%s: %v", uid, err)
		return err
	}
	return nil
}

// Delete removes the auth record and the profile mirror. A missing profile
// is not an error: the auth record is the primary store.
func (u *UserUsecase) Delete(ctx context.Context, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return userdom.ErrInvalidUID
	}

	if err := u.identity.DeleteUser(ctx, uid); err != nil {
		return err
	}
	if err := u.profiles.Delete(ctx, uid); err != nil && err != userdom.ErrNotFound {
		log.Printf("[user.uc] WARN: auth record deleted but profile removal failed uid=%s: %v", uid, err)
		return err
	}
	return nil
}

// CreateUserInput is the admin create-user request.
type CreateUserInput struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// CreatedUser is the admin create-user response, temp password included.
type CreatedUser struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TempPassword string `json:"tempPassword"`
}

// CreateUser provisions an account with a generated temporary password, sets
// the role claim, writes the profile document, and mails the temp password
// when a mailer is configured (mail failure does not fail the call).
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (CreatedUser, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return CreatedUser{}, userdom.ErrInvalidEmail
	}
	if !userdom.ValidRole(in.Role) {
		return CreatedUser{}, userdom.ErrInvalidRole
	}

	tempPassword := u.genPass()

	uid, err := u.identity.CreateUser(ctx, in.Email, tempPassword)
	if err != nil {
		return CreatedUser{}, err
	}
	if err := u.identity.SetRole(ctx, uid, in.Role); err != nil {
		return CreatedUser{}, err
	}

	p := userdom.Profile{
		UID:       uid,
		Email:     in.Email,
		Role:      in.Role,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		City:      in.City,
		Country:   in.Country,
		CreatedAt: u.now().UTC(),
	}
	if err := u.profiles.Create(ctx, p); err != nil {
		return CreatedUser{}, err
	}

	if u.mailer != nil {
		if err := u.mailer.SendTempPassword(ctx, in.Email, tempPassword); err != nil {
			log.Printf("[user.uc] WARN: temp password mail failed email=%s: %v", in.Email, err)
		}
	}

	return CreatedUser{UID: uid, Email: in.Email, Role: in.Role, TempPassword: tempPassword}, nil
}
