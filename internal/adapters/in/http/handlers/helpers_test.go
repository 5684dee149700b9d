// internal/adapters/in/http/handlers/helpers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodePayloadBytesPlainObject(t *testing.T) {
	body := []byte(`{"name_tour":"Fjords","price_tour":1200.5,"duration_tour":"5","details":[{"itinerary_desc":"hike"}]}`)
	p, err := decodePayloadBytes(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Fjords" || p.Duration != "5" {
		t.Errorf("payload = %+v", p)
	}
	if f, _ := p.Price.Float64(); f != 1200.5 {
		t.Errorf("price = %v", p.Price)
	}
	if len(p.Details) != 1 || p.Details[0].Description != "hike" {
		t.Errorf("details = %+v", p.Details)
	}
}

func TestDecodePayloadBytesDataWrapped(t *testing.T) {
	inner := `{"name_tour":"Fjords","price_tour":"900"}`
	wrapped, _ := json.Marshal(map[string]string{"data": inner})

	p, err := decodePayloadBytes(wrapped)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Fjords" {
		t.Errorf("wrapped payload not unwrapped: %+v", p)
	}
	if f, _ := p.Price.Float64(); f != 900 {
		t.Errorf("price = %v", p.Price)
	}
}

func TestDecodePayloadBytesMalformed(t *testing.T) {
	if _, err := decodePayloadBytes([]byte("{nope")); err == nil {
		t.Fatal("malformed body must error")
	}
}

func TestDecodeTourRequestMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	_ = w.WriteField("data", `{"name_tour":"Sahara","price_tour":750,"details":[{},{}]}`)

	cover, _ := w.CreateFormFile("image_tour", "cover.jpg")
	_, _ = cover.Write([]byte("cover-bytes"))
	d1, _ := w.CreateFormFile("itinerary_image", "d1.jpg")
	_, _ = d1.Write([]byte("day-one"))
	d2, _ := w.CreateFormFile("itinerary_image", "d2.jpg")
	_, _ = d2.Write([]byte("day-two"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tours/add-tour", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	payload, files, err := decodeTourRequest(req)
	if err != nil {
		t.Fatalf("decodeTourRequest: %v", err)
	}
	if payload.Name != "Sahara" || len(payload.Details) != 2 {
		t.Errorf("payload = %+v", payload)
	}

	var coverCount, itineraryCount int
	for _, f := range files {
		switch f.Field {
		case "image_tour":
			coverCount++
			if string(f.Data) != "cover-bytes" {
				t.Errorf("cover bytes = %q", f.Data)
			}
		case "itinerary_image":
			itineraryCount++
		}
	}
	if coverCount != 1 || itineraryCount != 2 {
		t.Errorf("flattened files: cover=%d itinerary=%d, want 1 and 2", coverCount, itineraryCount)
	}
}

func TestDecodeTourRequestMultipartFieldKeyedFiles(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("data", `{"name_tour":"Alps","details":[{"id":"a"},{"id":"b"}]}`)

	f0, _ := w.CreateFormFile("itinerary_image_0", "a.jpg")
	_, _ = f0.Write([]byte("row-zero"))
	f1, _ := w.CreateFormFile("itinerary_image_1", "b.jpg")
	_, _ = f1.Write([]byte("row-one"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/tours/update/600001", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, files, err := decodeTourRequest(req)
	if err != nil {
		t.Fatalf("decodeTourRequest: %v", err)
	}

	byField := map[string]string{}
	for _, f := range files {
		byField[f.Field] = string(f.Data)
	}
	if byField["itinerary_image_0"] != "row-zero" || byField["itinerary_image_1"] != "row-one" {
		t.Errorf("field-keyed files = %v", byField)
	}
}

func TestDecodeTourRequestJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tours/add-tour",
		strings.NewReader(`{"name_tour":"City Lights","price_tour":"300"}`))
	req.Header.Set("Content-Type", "application/json")

	payload, files, err := decodeTourRequest(req)
	if err != nil {
		t.Fatalf("decodeTourRequest: %v", err)
	}
	if payload.Name != "City Lights" {
		t.Errorf("payload = %+v", payload)
	}
	if len(files) != 0 {
		t.Errorf("json body should carry no files, got %d", len(files))
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := parseIntDefault("", 10); got != 10 {
		t.Errorf("empty = %d", got)
	}
	if got := parseIntDefault("7", 10); got != 7 {
		t.Errorf("7 = %d", got)
	}
	if got := parseIntDefault("-3", 10); got != 10 {
		t.Errorf("negative = %d", got)
	}
	if got := parseIntDefault("abc", 10); got != 10 {
		t.Errorf("garbage = %d", got)
	}
}
