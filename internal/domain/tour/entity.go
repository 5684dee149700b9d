// internal/domain/tour/entity.go
package tour

import "errors"

// ---------------------------
// Domain errors
// ---------------------------

var (
	ErrNotFound       = errors.New("tour not found")
	ErrInvalidID      = errors.New("tour: invalid id")
	ErrInvalidPayload = errors.New("tour: invalid JSON payload")
)

// MinTourID is the floor for generated tour identifiers. Generated ids are
// kept above this threshold so they never collide with pre-seeded data.
const MinTourID = 600000

// ----------------------------------------
// Tour entity
// ----------------------------------------

// Tour is one bookable travel package. The Firestore document key is the
// stringified IDTour.
type Tour struct {
	ID        string  `firestore:"-" json:"id"`
	IDTour    int64   `firestore:"id_tour" json:"id_tour"`
	Name      string  `firestore:"name_tour" json:"name_tour"`
	Price     float64 `firestore:"price_tour" json:"price_tour"`
	Duration  string  `firestore:"duration_tour" json:"duration_tour"`
	Location  string  `firestore:"location_tour" json:"location_tour"`
	Image     *string `firestore:"image_tour" json:"image_tour"`
	Reviews   float64 `firestore:"reviews_tour" json:"reviews_tour"`
	CreatedAt string  `firestore:"created_at" json:"created_at"`
	UpdatedAt string  `firestore:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Detail is one itinerary row ("Day N" or "Intro") under a tour.
// The descriptive fields are duplicated per day rather than normalized;
// that shape is part of the client contract.
type Detail struct {
	ID            string  `firestore:"-" json:"id"`
	Day           string  `firestore:"itinerary_day" json:"itinerary_day"`
	Description   string  `firestore:"itinerary_desc" json:"itinerary_desc"`
	Accommodation *string `firestore:"itinerary_accommodation" json:"itinerary_accommodation"`
	Image         *string `firestore:"itinerary_image" json:"itinerary_image"`

	OperatorName   string `firestore:"operator_name" json:"operator_name"`
	TourStyleTitle string `firestore:"tour_style_title" json:"tour_style_title"`
	TourStyleDesc  string `firestore:"tour_style_desc" json:"tour_style_desc"`
	GuideTypeTitle string `firestore:"guide_type_title" json:"guide_type_title"`
	GuideTypeDesc  string `firestore:"guide_type_desc" json:"guide_type_desc"`
	IntensityTitle string `firestore:"intensity_title" json:"intensity_title"`
	IntensityDesc  string `firestore:"intensity_desc" json:"intensity_desc"`
	Language       string `firestore:"language" json:"language"`
	GroupSize      string `firestore:"group_size" json:"group_size"`
	AgeRange       string `firestore:"age_range" json:"age_range"`
}

// WithDetails is a tour plus its ordered itinerary, as returned by
// GET /api/tours/{id}.
type WithDetails struct {
	Tour
	Details []Detail `json:"tours_details"`
}

// MainUpdate carries the scalar-field update applied by the reconcile-update
// operation. Image is only written when non-nil (a new upload or an explicit
// URL from the payload); the stored cover is preserved otherwise.
type MainUpdate struct {
	Name      string
	Price     float64
	Duration  string
	Location  string
	Image     *string
	UpdatedAt string
}
