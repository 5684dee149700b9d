// internal/adapters/out/gcs/tourImage_repository_gcs.go
package gcs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// maxFetchSize bounds how much is pulled from a remote/base64 image source.
const maxFetchSize = 10 << 20 // 10MB

// TourImageRepositoryGCS stores tour and itinerary images in GCS (object
// storage). Implements usecase.ImageUploader.
//
// Layout (single bucket): travel_app_tours/<name>-<suffix>
//
// Public access:
//   - The bucket is expected to grant "allUsers: Storage Object Viewer"
//     (uniform access), so objects are publicly readable without per-object
//     ACL changes.
type TourImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewTourImageRepositoryGCS(client *storage.Client, bucket string) *TourImageRepositoryGCS {
	return &TourImageRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

// Upload persists raw image bytes and returns the public object URL.
func (r *TourImageRepositoryGCS) Upload(ctx context.Context, data []byte, name string) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("tourImage_repository_gcs: storage client is nil")
	}
	if strings.TrimSpace(r.Bucket) == "" {
		return "", errors.New("tourImage_repository_gcs: bucket is empty")
	}
	if len(data) == 0 {
		return "", errors.New("tourImage_repository_gcs: empty image data")
	}

	// Random suffix so a re-upload under the same logical name is a fresh
	// object (no stale CDN/browser caches).
	objPath := fmt.Sprintf("travel_app_tours/%s-%s", sanitizeName(name), uuid.NewString()[:8])

	w := r.Client.Bucket(r.Bucket).Object(objPath).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)
	w.CacheControl = "public, max-age=86400"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return r.publicURL(objPath), nil
}

// UploadFromURI accepts either a base64 data URI or a remote http(s) URL,
// materializes the bytes and persists them like Upload.
func (r *TourImageRepositoryGCS) UploadFromURI(ctx context.Context, uri, name string) (string, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case strings.HasPrefix(uri, "data:"):
		data, err := decodeDataURI(uri)
		if err != nil {
			return "", err
		}
		return r.Upload(ctx, data, name)
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		data, err := fetchRemote(ctx, uri)
		if err != nil {
			return "", err
		}
		return r.Upload(ctx, data, name)
	default:
		return "", fmt.Errorf("tourImage_repository_gcs: unsupported image source %q", truncate(uri, 40))
	}
}

func (r *TourImageRepositoryGCS) publicURL(objPath string) string {
	base := strings.TrimRight(r.PublicBaseURL, "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	return fmt.Sprintf("%s/%s/%s", base, r.Bucket, objPath)
}

// ========================
// Helpers
// ========================

func decodeDataURI(uri string) ([]byte, error) {
	// data:image/png;base64,<payload>
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return nil, errors.New("tourImage_repository_gcs: malformed data URI")
	}
	meta, payload := uri[:idx], uri[idx+1:]
	if !strings.Contains(meta, "base64") {
		return nil, errors.New("tourImage_repository_gcs: data URI is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("tourImage_repository_gcs: bad base64 payload: %w", err)
	}
	return data, nil
}

func fetchRemote(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tourImage_repository_gcs: fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "image"
	}
	name = strings.ReplaceAll(name, "/", "-")
	return strings.ReplaceAll(name, " ", "-")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
