// internal/application/usecase/tour_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tourdom "travelia/internal/domain/tour"
)

// ImageUploader is the outbound port to the image store. Upload persists raw
// bytes under a name and returns the public URL; UploadFromURI accepts a
// remote http(s) URL or a base64 data URI.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, name string) (string, error)
	UploadFromURI(ctx context.Context, uri, name string) (string, error)
}

// Multipart field names used by both the web and mobile clients.
const (
	fieldImageTour      = "image_tour"
	fieldItineraryImage = "itinerary_image"
)

// UploadFile is one uploaded multipart file, tagged with its form field name.
// Handlers flatten whatever shape the client sent (flat list or field-keyed
// map) into a single []UploadFile before calling the usecase.
type UploadFile struct {
	Field string
	Data  []byte
}

// TourPayload is the canonical parsed request body for add-tour and
// update-tour. Handlers resolve the payload union (plain JSON body vs a
// string-encoded JSON object under "data") into this one shape.
type TourPayload struct {
	Name     string          `json:"name_tour"`
	Price    json.Number     `json:"price_tour"`
	Duration string          `json:"duration_tour"`
	Location string          `json:"location_tour"`
	Image    *string         `json:"image_tour"`
	Reviews  float64         `json:"reviews_tour"`
	Details  []DetailPayload `json:"details"`
}

// DetailPayload is one incoming itinerary row. ID is only meaningful on
// update: when it matches an existing document key the row is updated in
// place, otherwise it is added as a new document.
type DetailPayload struct {
	ID            string  `json:"id"`
	Day           string  `json:"itinerary_day"`
	Description   string  `json:"itinerary_desc"`
	Accommodation *string `json:"itinerary_accommodation"`
	Image         *string `json:"itinerary_image"`

	OperatorName   string `json:"operator_name"`
	TourStyleTitle string `json:"tour_style_title"`
	TourStyleDesc  string `json:"tour_style_desc"`
	GuideTypeTitle string `json:"guide_type_title"`
	GuideTypeDesc  string `json:"guide_type_desc"`
	IntensityTitle string `json:"intensity_title"`
	IntensityDesc  string `json:"intensity_desc"`
	Language       string `json:"language"`
	GroupSize      string `json:"group_size"`
	AgeRange       string `json:"age_range"`
}

func (p TourPayload) priceValue() float64 {
	f, err := p.Price.Float64()
	if err != nil {
		return 0
	}
	return f
}

// CreatedTour is the add-tour response.
type CreatedTour struct {
	ID     string `json:"id"`
	IDTour int64  `json:"id_tour"`
}

type TourUsecase struct {
	tours   tourdom.Repository
	details tourdom.DetailRepository
	ids     tourdom.IDAllocator
	images  ImageUploader
	now     func() time.Time
}

func NewTourUsecase(
	tours tourdom.Repository,
	details tourdom.DetailRepository,
	ids tourdom.IDAllocator,
	images ImageUploader,
) *TourUsecase {
	return &TourUsecase{
		tours:   tours,
		details: details,
		ids:     ids,
		images:  images,
		now:     time.Now,
	}
}

// ========================
// Queries
// ========================

func (u *TourUsecase) List(ctx context.Context) ([]tourdom.Tour, error) {
	return u.tours.List(ctx)
}

func (u *TourUsecase) Latest(ctx context.Context, limit int) ([]tourdom.Tour, error) {
	if limit <= 0 {
		limit = 10
	}
	return u.tours.ListLatest(ctx, limit)
}

// GetByID returns a tour plus its itinerary in chronological order.
func (u *TourUsecase) GetByID(ctx context.Context, id string) (tourdom.WithDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return tourdom.WithDetails{}, tourdom.ErrInvalidID
	}

	t, err := u.tours.GetByID(ctx, id)
	if err != nil {
		return tourdom.WithDetails{}, err
	}

	details, err := u.details.ListByTour(ctx, id)
	if err != nil {
		return tourdom.WithDetails{}, err
	}
	tourdom.SortDetails(details)

	return tourdom.WithDetails{Tour: t, Details: details}, nil
}

// DetailsByTour returns just the itinerary, intro-and-day sorted.
func (u *TourUsecase) DetailsByTour(ctx context.Context, tourID string) ([]tourdom.Detail, error) {
	tourID = strings.TrimSpace(tourID)
	if tourID == "" {
		return nil, tourdom.ErrInvalidID
	}
	details, err := u.details.ListByTour(ctx, tourID)
	if err != nil {
		return nil, err
	}
	tourdom.SortDetails(details)
	return details, nil
}

func (u *TourUsecase) Recommend(ctx context.Context, ans tourdom.Answer) (*tourdom.Tour, error) {
	tours, err := u.tours.List(ctx)
	if err != nil {
		return nil, err
	}
	return tourdom.Recommend(tours, ans), nil
}

// ========================
// Commands
// ========================

// Create allocates a fresh id, uploads any tagged images and writes the tour
// plus one detail document per day, labeled "Day 1".."Day N" in order.
func (u *TourUsecase) Create(ctx context.Context, payload TourPayload, files []UploadFile) (CreatedTour, error) {
	idTour, err := u.ids.NextID(ctx)
	if err != nil {
		return CreatedTour{}, err
	}
	docID := strconv.FormatInt(idTour, 10)

	cover, err := u.resolveImage(ctx, findFile(files, fieldImageTour), payload.Image, fmt.Sprintf("tour-%d", idTour))
	if err != nil {
		return CreatedTour{}, err
	}

	t := tourdom.Tour{
		ID:        docID,
		IDTour:    idTour,
		Name:      payload.Name,
		Price:     payload.priceValue(),
		Duration:  payload.Duration,
		Location:  payload.Location,
		Image:     cover,
		Reviews:   payload.Reviews,
		CreatedAt: u.now().UTC().Format(time.RFC3339),
	}
	if err := u.tours.Create(ctx, t); err != nil {
		return CreatedTour{}, err
	}

	// On create the itinerary_image files arrive as repeated
	// "itinerary_image" fields, matched to detail rows by position.
	detailFiles := filterFiles(files, fieldItineraryImage)

	if len(payload.Details) > 0 {
		details := make([]tourdom.Detail, 0, len(payload.Details))
		for i, dp := range payload.Details {
			var f *UploadFile
			if i < len(detailFiles) {
				f = &detailFiles[i]
			}
			img, err := u.resolveImage(ctx, f, dp.Image, fmt.Sprintf("tour-%d-day-%d", idTour, i+1))
			if err != nil {
				return CreatedTour{}, err
			}

			d := dp.toDetail()
			d.Day = tourdom.DayLabel(i)
			d.Image = img
			d.ApplyCreateDefaults()
			details = append(details, d)
		}

		if err := u.details.CreateBatch(ctx, docID, details); err != nil {
			return CreatedTour{}, err
		}
	}

	log.Printf("[tour.uc] created tour id=%s days=%d", docID, len(payload.Details))
	return CreatedTour{ID: docID, IDTour: idTour}, nil
}

// Update reconciles a tour against an incoming payload:
//
//  1. scalar fields are rewritten and stamped with updated_at;
//  2. each incoming detail whose id matches an existing document key is
//     updated in place (and marked accounted-for);
//  3. details without a matching id are added;
//  4. existing documents not matched by any incoming detail are deleted.
//
// Per-row image files are tagged "itinerary_image_{i}" by row position; a
// detail whose image is already a URL string is never re-uploaded.
func (u *TourUsecase) Update(ctx context.Context, docID string, payload TourPayload, files []UploadFile) error {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return tourdom.ErrInvalidID
	}

	current, err := u.tours.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	// Cover: a tagged file wins; an explicit URL in the payload is kept as
	// supplied; otherwise the stored cover is preserved.
	cover := current.Image
	if f := findFile(files, fieldImageTour); f != nil {
		url, err := u.images.Upload(ctx, f.Data, fmt.Sprintf("tour-%s-thumbnail-%d", docID, u.now().UnixMilli()))
		if err != nil {
			return err
		}
		cover = &url
	} else if payload.Image != nil && strings.TrimSpace(*payload.Image) != "" {
		cover = payload.Image
	}

	upd := tourdom.MainUpdate{
		Name:      payload.Name,
		Price:     payload.priceValue(),
		Duration:  payload.Duration,
		Location:  payload.Location,
		Image:     cover,
		UpdatedAt: u.now().UTC().Format(time.RFC3339),
	}
	if err := u.tours.UpdateMain(ctx, docID, upd); err != nil {
		return err
	}

	existingIDs, err := u.details.IDs(ctx, docID)
	if err != nil {
		return err
	}
	remaining := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		remaining[id] = true
	}

	log.Printf("[tour.uc] update tour id=%s existing=%d incoming=%d", docID, len(existingIDs), len(payload.Details))

	for i, dp := range payload.Details {
		img := dp.Image
		if f := findFile(files, fmt.Sprintf("%s_%d", fieldItineraryImage, i)); f != nil {
			url, err := u.images.Upload(ctx, f.Data, fmt.Sprintf("tour-%s-day-%d-%d", docID, i+1, u.now().UnixMilli()))
			if err != nil {
				return err
			}
			img = &url
		}

		d := dp.toDetail()
		d.Image = img
		if strings.TrimSpace(d.Day) == "" {
			d.Day = tourdom.DayLabel(i)
		}

		// Update only when the client supplied an id that is still present;
		// anything else is a new row.
		if id := strings.TrimSpace(dp.ID); id != "" && remaining[id] {
			if err := u.details.Update(ctx, docID, id, d); err != nil {
				return err
			}
			delete(remaining, id)
		} else {
			if _, err := u.details.Add(ctx, docID, d); err != nil {
				return err
			}
		}
	}

	// Whatever the client did not send back was removed on their side.
	for id := range remaining {
		if err := u.details.Delete(ctx, docID, id); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a tour and every itinerary document under it. Children go
// first: deleting the parent before the sub-collection risks an orphaned,
// unreachable sub-collection if the batch delete fails partway.
func (u *TourUsecase) Delete(ctx context.Context, docID string) (string, error) {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return "", tourdom.ErrInvalidID
	}

	if _, err := u.tours.GetByID(ctx, docID); err != nil {
		return "", err
	}

	if err := u.details.DeleteAll(ctx, docID); err != nil {
		return "", err
	}
	if err := u.tours.Delete(ctx, docID); err != nil {
		return "", err
	}

	log.Printf("[tour.uc] deleted tour id=%s", docID)
	return docID, nil
}

// ========================
// Helpers
// ========================

// resolveImage picks the image for a tour or detail row: an uploaded file is
// persisted and wins; a data: URI is persisted through the uploader; a plain
// URL string is assumed already persisted and kept as-is.
func (u *TourUsecase) resolveImage(ctx context.Context, f *UploadFile, supplied *string, name string) (*string, error) {
	if f != nil {
		url, err := u.images.Upload(ctx, f.Data, name)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}
	if supplied == nil || strings.TrimSpace(*supplied) == "" {
		return nil, nil
	}
	if strings.HasPrefix(*supplied, "data:") {
		url, err := u.images.UploadFromURI(ctx, *supplied, name)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}
	return supplied, nil
}

func (dp DetailPayload) toDetail() tourdom.Detail {
	return tourdom.Detail{
		Day:            dp.Day,
		Description:    dp.Description,
		Accommodation:  dp.Accommodation,
		Image:          dp.Image,
		OperatorName:   dp.OperatorName,
		TourStyleTitle: dp.TourStyleTitle,
		TourStyleDesc:  dp.TourStyleDesc,
		GuideTypeTitle: dp.GuideTypeTitle,
		GuideTypeDesc:  dp.GuideTypeDesc,
		IntensityTitle: dp.IntensityTitle,
		IntensityDesc:  dp.IntensityDesc,
		Language:       dp.Language,
		GroupSize:      dp.GroupSize,
		AgeRange:       dp.AgeRange,
	}
}

func findFile(files []UploadFile, field string) *UploadFile {
	for i := range files {
		if files[i].Field == field {
			return &files[i]
		}
	}
	return nil
}

func filterFiles(files []UploadFile, field string) []UploadFile {
	var out []UploadFile
	for _, f := range files {
		if f.Field == field {
			out = append(out, f)
		}
	}
	return out
}
