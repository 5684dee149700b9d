// internal/application/usecase/tour_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	tourdom "travelia/internal/domain/tour"
)

// ----------------------------------------
// In-memory fakes
// ----------------------------------------

type fakeTourRepo struct {
	tours   map[string]tourdom.Tour
	updates map[string]tourdom.MainUpdate
	ops     *[]string
}

func newFakeTourRepo(ops *[]string) *fakeTourRepo {
	return &fakeTourRepo{
		tours:   map[string]tourdom.Tour{},
		updates: map[string]tourdom.MainUpdate{},
		ops:     ops,
	}
}

func (r *fakeTourRepo) log(op string) {
	if r.ops != nil {
		*r.ops = append(*r.ops, op)
	}
}

func (r *fakeTourRepo) GetByID(_ context.Context, id string) (tourdom.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return tourdom.Tour{}, tourdom.ErrNotFound
	}
	return t, nil
}

func (r *fakeTourRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.tours[id]
	return ok, nil
}

func (r *fakeTourRepo) List(_ context.Context) ([]tourdom.Tour, error) {
	out := make([]tourdom.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTourRepo) ListLatest(_ context.Context, limit int) ([]tourdom.Tour, error) {
	out, _ := r.List(context.Background())
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTourRepo) Create(_ context.Context, t tourdom.Tour) error {
	r.log("tours.Create")
	r.tours[t.ID] = t
	return nil
}

func (r *fakeTourRepo) UpdateMain(_ context.Context, id string, upd tourdom.MainUpdate) error {
	if _, ok := r.tours[id]; !ok {
		return tourdom.ErrNotFound
	}
	r.log("tours.UpdateMain")
	r.updates[id] = upd

	t := r.tours[id]
	t.Name = upd.Name
	t.Price = upd.Price
	t.Duration = upd.Duration
	t.Location = upd.Location
	if upd.Image != nil {
		t.Image = upd.Image
	}
	t.UpdatedAt = upd.UpdatedAt
	r.tours[id] = t
	return nil
}

func (r *fakeTourRepo) Delete(_ context.Context, id string) error {
	r.log("tours.Delete")
	delete(r.tours, id)
	return nil
}

type fakeDetailRepo struct {
	byTour map[string]map[string]tourdom.Detail
	seq    int
	ops    *[]string
}

func newFakeDetailRepo(ops *[]string) *fakeDetailRepo {
	return &fakeDetailRepo{byTour: map[string]map[string]tourdom.Detail{}, ops: ops}
}

func (r *fakeDetailRepo) log(op string) {
	if r.ops != nil {
		*r.ops = append(*r.ops, op)
	}
}

func (r *fakeDetailRepo) col(tourID string) map[string]tourdom.Detail {
	if r.byTour[tourID] == nil {
		r.byTour[tourID] = map[string]tourdom.Detail{}
	}
	return r.byTour[tourID]
}

func (r *fakeDetailRepo) ListByTour(_ context.Context, tourID string) ([]tourdom.Detail, error) {
	out := make([]tourdom.Detail, 0, len(r.byTour[tourID]))
	for id, d := range r.byTour[tourID] {
		d.ID = id
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDetailRepo) IDs(_ context.Context, tourID string) ([]string, error) {
	ids := make([]string, 0, len(r.byTour[tourID]))
	for id := range r.byTour[tourID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeDetailRepo) CreateBatch(_ context.Context, tourID string, details []tourdom.Detail) error {
	r.log("details.CreateBatch")
	for _, d := range details {
		r.seq++
		r.col(tourID)[fmt.Sprintf("gen-%d", r.seq)] = d
	}
	return nil
}

func (r *fakeDetailRepo) Add(_ context.Context, tourID string, d tourdom.Detail) (string, error) {
	r.log("details.Add")
	r.seq++
	id := fmt.Sprintf("gen-%d", r.seq)
	r.col(tourID)[id] = d
	return id, nil
}

func (r *fakeDetailRepo) Update(_ context.Context, tourID, detailID string, d tourdom.Detail) error {
	if _, ok := r.byTour[tourID][detailID]; !ok {
		return tourdom.ErrNotFound
	}
	r.log("details.Update")
	r.byTour[tourID][detailID] = d
	return nil
}

func (r *fakeDetailRepo) Delete(_ context.Context, tourID, detailID string) error {
	r.log("details.Delete")
	delete(r.byTour[tourID], detailID)
	return nil
}

func (r *fakeDetailRepo) DeleteAll(_ context.Context, tourID string) error {
	r.log("details.DeleteAll")
	delete(r.byTour, tourID)
	return nil
}

type fakeAllocator struct{ next int64 }

func (a *fakeAllocator) NextID(context.Context) (int64, error) {
	if a.next < tourdom.MinTourID {
		a.next = tourdom.MinTourID
	}
	n := a.next
	a.next++
	return n, nil
}

type fakeUploader struct {
	uploads    int
	uriUploads int
	fail       bool
}

func (u *fakeUploader) Upload(_ context.Context, _ []byte, name string) (string, error) {
	if u.fail {
		return "", errors.New("upload failed")
	}
	u.uploads++
	return "https://img.example/" + name, nil
}

func (u *fakeUploader) UploadFromURI(_ context.Context, _ string, name string) (string, error) {
	if u.fail {
		return "", errors.New("upload failed")
	}
	u.uriUploads++
	return "https://img.example/" + name, nil
}

func newTestTourUsecase(t *testing.T) (*TourUsecase, *fakeTourRepo, *fakeDetailRepo, *fakeUploader, *[]string) {
	t.Helper()
	ops := &[]string{}
	tours := newFakeTourRepo(ops)
	details := newFakeDetailRepo(ops)
	up := &fakeUploader{}
	uc := NewTourUsecase(tours, details, &fakeAllocator{}, up)
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc, tours, details, up, ops
}

// ----------------------------------------
// Create
// ----------------------------------------

func TestCreateAssignsDayLabelsAndDefaults(t *testing.T) {
	uc, tours, details, _, _ := newTestTourUsecase(t)

	payload := TourPayload{
		Name:     "Sahara Express",
		Price:    "750",
		Duration: "3",
		Location: "Morocco",
		Details: []DetailPayload{
			{Description: "arrive"},
			{Description: "dunes"},
			{Description: "depart"},
		},
	}

	created, err := uc.Create(context.Background(), payload, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.IDTour < tourdom.MinTourID {
		t.Errorf("id_tour %d below floor", created.IDTour)
	}
	if created.ID != fmt.Sprintf("%d", created.IDTour) {
		t.Errorf("document key %q should be the stringified id_tour", created.ID)
	}

	saved := tours.tours[created.ID]
	if saved.Price != 750 || saved.Name != "Sahara Express" {
		t.Errorf("saved tour = %+v", saved)
	}
	if saved.CreatedAt == "" {
		t.Error("created_at not stamped")
	}

	rows, _ := details.ListByTour(context.Background(), created.ID)
	if len(rows) != 3 {
		t.Fatalf("detail rows = %d, want 3", len(rows))
	}
	tourdom.SortDetails(rows)
	for i, d := range rows {
		want := fmt.Sprintf("Day %d", i+1)
		if d.Day != want {
			t.Errorf("row %d day = %q, want %q", i, d.Day, want)
		}
		if d.OperatorName != "Explore!" {
			t.Errorf("row %d operator default missing: %q", i, d.OperatorName)
		}
	}
}

func TestCreateMatchesItineraryFilesByPosition(t *testing.T) {
	uc, tours, details, up, _ := newTestTourUsecase(t)

	files := []UploadFile{
		{Field: "image_tour", Data: []byte("cover")},
		{Field: "itinerary_image", Data: []byte("d1")},
		{Field: "itinerary_image", Data: []byte("d2")},
	}
	payload := TourPayload{
		Name: "Island Hop", Price: "400", Duration: "3",
		Details: []DetailPayload{{}, {}, {}},
	}

	created, err := uc.Create(context.Background(), payload, files)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if up.uploads != 3 {
		t.Errorf("uploads = %d, want 3 (cover + 2 itinerary)", up.uploads)
	}

	if img := tours.tours[created.ID].Image; img == nil {
		t.Error("cover image not set")
	}

	rows, _ := details.ListByTour(context.Background(), created.ID)
	tourdom.SortDetails(rows)
	if rows[0].Image == nil || rows[1].Image == nil {
		t.Error("first two rows should carry uploaded images")
	}
	if rows[2].Image != nil {
		t.Errorf("third row got an image it was never sent: %v", *rows[2].Image)
	}
}

func TestCreateUploadsDataURIButKeepsPlainURL(t *testing.T) {
	uc, tours, _, up, _ := newTestTourUsecase(t)

	dataURI := "data:image/png;base64,aGk="
	created, err := uc.Create(context.Background(), TourPayload{Name: "A", Price: "1", Image: &dataURI}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if up.uriUploads != 1 {
		t.Errorf("data URI should go through the uploader, calls = %d", up.uriUploads)
	}

	plain := "https://cdn.example/already-there.jpg"
	created2, err := uc.Create(context.Background(), TourPayload{Name: "B", Price: "1", Image: &plain}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if up.uriUploads != 1 || up.uploads != 0 {
		t.Errorf("plain URL must not be re-uploaded (uri=%d uploads=%d)", up.uriUploads, up.uploads)
	}
	if img := tours.tours[created2.ID].Image; img == nil || *img != plain {
		t.Errorf("plain URL not preserved: %v", img)
	}
	_ = created
}

// ----------------------------------------
// Update reconciliation
// ----------------------------------------

func seedTour(tours *fakeTourRepo, details *fakeDetailRepo, id string, rows map[string]tourdom.Detail) {
	tours.tours[id] = tourdom.Tour{ID: id, Name: "seed", Price: 100, Duration: "2"}
	for rid, d := range rows {
		details.col(id)[rid] = d
	}
}

func TestUpdateReconcilesDetails(t *testing.T) {
	uc, tours, details, _, _ := newTestTourUsecase(t)
	seedTour(tours, details, "600001", map[string]tourdom.Detail{
		"a": {Day: "Day 1", Description: "old a"},
		"b": {Day: "Day 2", Description: "old b"},
		"c": {Day: "Day 3", Description: "old c"},
	})

	payload := TourPayload{
		Name: "Renamed", Price: "150", Duration: "3",
		Details: []DetailPayload{
			{ID: "a", Day: "Day 1", Description: "new a"},
			{ID: "c", Day: "Day 2", Description: "new c"},
			{Day: "Day 3", Description: "brand new"},
		},
	}
	if err := uc.Update(context.Background(), "600001", payload, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows := details.byTour["600001"]
	if len(rows) != 3 {
		t.Fatalf("rows after update = %d, want 3", len(rows))
	}
	if rows["a"].Description != "new a" {
		t.Errorf("row a not updated in place: %+v", rows["a"])
	}
	if rows["c"].Description != "new c" {
		t.Errorf("row c not updated in place: %+v", rows["c"])
	}
	if _, ok := rows["b"]; ok {
		t.Error("row b was not sent back and must be deleted")
	}

	foundNew := false
	for id, d := range rows {
		if id != "a" && id != "c" && d.Description == "brand new" {
			foundNew = true
		}
	}
	if !foundNew {
		t.Error("the id-less row must be added as a new document")
	}

	if upd := tours.updates["600001"]; upd.Name != "Renamed" || upd.UpdatedAt == "" {
		t.Errorf("scalar update = %+v", upd)
	}
}

func TestUpdateIsIdempotentAndNeverReuploadsURLs(t *testing.T) {
	uc, tours, details, up, _ := newTestTourUsecase(t)
	img := "https://cdn.example/day1.jpg"
	seedTour(tours, details, "600001", map[string]tourdom.Detail{
		"a": {Day: "Day 1", Image: &img},
		"b": {Day: "Day 2"},
	})

	payload := TourPayload{
		Name: "Same", Price: "100", Duration: "2",
		Details: []DetailPayload{
			{ID: "a", Day: "Day 1", Image: &img},
			{ID: "b", Day: "Day 2"},
		},
	}

	for i := 0; i < 2; i++ {
		if err := uc.Update(context.Background(), "600001", payload, nil); err != nil {
			t.Fatalf("Update #%d: %v", i+1, err)
		}
	}

	rows := details.byTour["600001"]
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (no duplicates on repeat)", len(rows))
	}
	if _, ok := rows["a"]; !ok {
		t.Error("row a lost")
	}
	if _, ok := rows["b"]; !ok {
		t.Error("row b lost")
	}
	if up.uploads != 0 || up.uriUploads != 0 {
		t.Errorf("stored URLs must not be re-uploaded (uploads=%d uri=%d)", up.uploads, up.uriUploads)
	}
}

func TestUpdateRowFileOverridesStoredImage(t *testing.T) {
	uc, tours, details, up, _ := newTestTourUsecase(t)
	old := "https://cdn.example/old.jpg"
	seedTour(tours, details, "600001", map[string]tourdom.Detail{
		"a": {Day: "Day 1", Image: &old},
	})

	payload := TourPayload{
		Name: "T", Price: "100", Duration: "1",
		Details: []DetailPayload{{ID: "a", Day: "Day 1", Image: &old}},
	}
	files := []UploadFile{{Field: "itinerary_image_0", Data: []byte("fresh")}}

	if err := uc.Update(context.Background(), "600001", payload, files); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if up.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", up.uploads)
	}
	if got := details.byTour["600001"]["a"].Image; got == nil || *got == old {
		t.Errorf("row image should point at the fresh upload, got %v", got)
	}
}

func TestUpdateMissingTour(t *testing.T) {
	uc, _, _, _, _ := newTestTourUsecase(t)
	err := uc.Update(context.Background(), "nope", TourPayload{}, nil)
	if !errors.Is(err, tourdom.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ----------------------------------------
// Delete cascade
// ----------------------------------------

func TestDeleteRemovesChildrenBeforeParent(t *testing.T) {
	uc, tours, details, _, ops := newTestTourUsecase(t)
	seedTour(tours, details, "600001", map[string]tourdom.Detail{
		"a": {Day: "Day 1"}, "b": {Day: "Day 2"},
	})

	id, err := uc.Delete(context.Background(), "600001")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if id != "600001" {
		t.Errorf("deleted id = %q", id)
	}
	if len(details.byTour["600001"]) != 0 {
		t.Error("children left behind")
	}
	if _, ok := tours.tours["600001"]; ok {
		t.Error("parent left behind")
	}

	var deleteAll, parent int = -1, -1
	for i, op := range *ops {
		switch op {
		case "details.DeleteAll":
			deleteAll = i
		case "tours.Delete":
			parent = i
		}
	}
	if deleteAll == -1 || parent == -1 || deleteAll > parent {
		t.Fatalf("cascade order wrong: %v", *ops)
	}
}

func TestDeleteMissingTour(t *testing.T) {
	uc, _, _, _, _ := newTestTourUsecase(t)
	if _, err := uc.Delete(context.Background(), "nope"); !errors.Is(err, tourdom.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ----------------------------------------
// Queries
// ----------------------------------------

func TestGetByIDSortsItinerary(t *testing.T) {
	uc, tours, details, _, _ := newTestTourUsecase(t)
	seedTour(tours, details, "600001", map[string]tourdom.Detail{
		"x": {Day: "Day 10"},
		"y": {Day: "Intro"},
		"z": {Day: "Day 2"},
	})

	got, err := uc.GetByID(context.Background(), "600001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	days := []string{got.Details[0].Day, got.Details[1].Day, got.Details[2].Day}
	want := []string{"Intro", "Day 2", "Day 10"}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("itinerary order = %v, want %v", days, want)
		}
	}
}

func TestGetByIDValidation(t *testing.T) {
	uc, _, _, _, _ := newTestTourUsecase(t)
	if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, tourdom.ErrInvalidID) {
		t.Fatalf("err = %v, want ErrInvalidID", err)
	}
}
