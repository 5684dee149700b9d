// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"travelia/internal/application/usecase"
	bookingdom "travelia/internal/domain/booking"
	notifdom "travelia/internal/domain/notification"
	paydom "travelia/internal/domain/payment"
	tourdom "travelia/internal/domain/tour"
	userdom "travelia/internal/domain/user"
)

// maxMultipartMemory is the in-memory budget for parsed multipart bodies;
// larger files spill to temp storage.
const maxMultipartMemory = 32 << 20 // 32MB

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr translates domain sentinels into HTTP statuses. Anything
// unrecognized is a 500 with a generic message; the real error goes to the
// server log only.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tourdom.ErrNotFound),
		errors.Is(err, userdom.ErrNotFound),
		errors.Is(err, bookingdom.ErrNotFound),
		errors.Is(err, notifdom.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case errors.Is(err, tourdom.ErrInvalidID),
		errors.Is(err, tourdom.ErrInvalidPayload),
		errors.Is(err, userdom.ErrInvalidUID),
		errors.Is(err, userdom.ErrInvalidEmail),
		errors.Is(err, userdom.ErrInvalidRole),
		errors.Is(err, paydom.ErrMissingTour):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	default:
		log.Printf("[http] ERROR: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"message": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// ----------------------------------------
// Payload / file normalization
// ----------------------------------------

// decodeTourRequest resolves the payload union for add-tour and update-tour:
//
//   - multipart form: the JSON blob lives in the "data" field (web client);
//     scalar top-level form fields are the fallback (legacy callers). Files
//     are flattened into one tagged list whatever shape they were sent in.
//   - JSON body: either the object itself, or the object string-encoded
//     under "data" (mobile client).
//
// Downstream logic only ever sees one canonical shape.
func decodeTourRequest(r *http.Request) (usecase.TourPayload, []usecase.UploadFile, error) {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return usecase.TourPayload{}, nil, tourdom.ErrInvalidPayload
		}

		payload, err := payloadFromForm(r)
		if err != nil {
			return usecase.TourPayload{}, nil, err
		}

		files, err := collectFiles(r)
		if err != nil {
			return usecase.TourPayload{}, nil, err
		}
		return payload, files, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return usecase.TourPayload{}, nil, tourdom.ErrInvalidPayload
	}
	payload, err := decodePayloadBytes(body)
	return payload, nil, err
}

func payloadFromForm(r *http.Request) (usecase.TourPayload, error) {
	if data := r.FormValue("data"); data != "" {
		return decodePayloadBytes([]byte(data))
	}

	// Legacy callers post scalar fields directly.
	var p usecase.TourPayload
	p.Name = r.FormValue("name_tour")
	p.Price = json.Number(r.FormValue("price_tour"))
	p.Duration = r.FormValue("duration_tour")
	p.Location = r.FormValue("location_tour")
	if v := r.FormValue("image_tour"); v != "" {
		p.Image = &v
	}
	return p, nil
}

func decodePayloadBytes(body []byte) (usecase.TourPayload, error) {
	// Probe for a string-encoded object under "data" first.
	var wrapper struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Data != "" {
		body = []byte(wrapper.Data)
	}

	var p usecase.TourPayload
	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return usecase.TourPayload{}, tourdom.ErrInvalidPayload
	}
	return p, nil
}

// collectFiles flattens the parsed multipart file map into one list, each
// entry tagged with its form field name.
func collectFiles(r *http.Request) ([]usecase.UploadFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var out []usecase.UploadFile
	for field, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return nil, err
			}
			out = append(out, usecase.UploadFile{Field: field, Data: data})
		}
	}
	return out, nil
}
