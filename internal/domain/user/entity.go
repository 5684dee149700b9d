// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// ---------------------------
// Domain errors
// ---------------------------

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidUID   = errors.New("user: invalid uid")
	ErrInvalidEmail = errors.New("user: invalid email")
	ErrInvalidRole  = errors.New("user: invalid role")
)

// Roles recognized by the platform. RoleCustomer is the implicit default for
// tokens that carry no role claim.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ValidRole reports whether r is a role the platform assigns.
func ValidRole(r string) bool {
	switch strings.TrimSpace(r) {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

// ----------------------------------------
// Profile entity
// ----------------------------------------

// Profile is the Firestore mirror of an identity-provider user. The document
// key equals the provider UID; the role field mirrors the custom claim.
type Profile struct {
	UID       string    `firestore:"-" json:"uid"`
	Email     string    `firestore:"email" json:"email"`
	Role      string    `firestore:"role" json:"role"`
	FirstName string    `firestore:"firstName" json:"firstName"`
	LastName  string    `firestore:"lastName" json:"lastName"`
	Phone     string    `firestore:"phone" json:"phone"`
	City      string    `firestore:"city" json:"city"`
	Country   string    `firestore:"country" json:"country"`
	Avatar    string    `firestore:"avatar" json:"avatar"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// ProfileUpdate carries the fields a customer may change on their own
// profile. Nil means "leave unchanged".
type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	Avatar    *string `json:"avatar"`
}

// Account is the identity-provider view of a user (auth record + role claim).
type Account struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
