package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dishcovery/api-go/services"
)

type failingModel struct{}

func (m *failingModel) GenerateFromImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error) {
	return "", errors.New("model unavailable")
}

func newAnalyzeRouter(t *testing.T, store services.RestaurantStore, model services.ImageModel) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	classifier := services.NewCuisineClassifier(model)
	classifier.Sleep = func(ctx context.Context, d time.Duration) error { return nil }
	pipeline := services.NewSearchPipeline(store, classifier)

	r := gin.New()
	analyzeController := NewAnalyzeController(pipeline, uploadDir)
	r.POST("/api/analyze-image", analyzeController.AnalyzeImage)
	return r, uploadDir
}

func imageUploadRequest(t *testing.T, target string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "dinner.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("not-really-a-jpeg")); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func uploadsLeft(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	return len(entries)
}

func TestAnalyzeImage_OK(t *testing.T) {
	store := &stubStore{restaurants: seedRestaurants()}
	r, uploadDir := newAnalyzeRouter(t, store, &stubModel{label: "This appears to be Italian cuisine"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageUploadRequest(t, "/api/analyze-image"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success         bool              `json:"success"`
		DetectedCuisine string            `json:"detectedCuisine"`
		Result          []json.RawMessage `json:"result"`
		CurrentPage     int               `json:"currentPage"`
		TotalPages      int               `json:"totalPages"`
		TotalResults    int               `json:"totalResults"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.DetectedCuisine != "Italian" {
		t.Errorf("detectedCuisine = %q, want %q", body.DetectedCuisine, "Italian")
	}
	if body.TotalResults != 1 || len(body.Result) != 1 {
		t.Errorf("totalResults = %d with %d items, want 1 and 1", body.TotalResults, len(body.Result))
	}
	if body.CurrentPage != 1 || body.TotalPages != 1 {
		t.Errorf("paging = %d/%d, want 1/1", body.CurrentPage, body.TotalPages)
	}

	if n := uploadsLeft(t, uploadDir); n != 0 {
		t.Errorf("%d uploaded files left behind, want 0", n)
	}
}

func TestAnalyzeImage_NoFile(t *testing.T) {
	r, _ := newAnalyzeRouter(t, &stubStore{}, &stubModel{label: "Thai"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-image", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("No image uploaded.")) {
		t.Errorf("body %q should carry the missing-file message", w.Body.String())
	}
}

func TestAnalyzeImage_ClassificationFailureCleansUp(t *testing.T) {
	r, uploadDir := newAnalyzeRouter(t, &stubStore{}, &failingModel{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageUploadRequest(t, "/api/analyze-image"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"success":false`)) {
		t.Errorf("body %q should report success=false", w.Body.String())
	}

	if n := uploadsLeft(t, uploadDir); n != 0 {
		t.Errorf("%d uploaded files left behind after failure, want 0", n)
	}
}

func TestAnalyzeImage_EmptyMatchIsStillSuccess(t *testing.T) {
	r, _ := newAnalyzeRouter(t, &stubStore{}, &stubModel{label: "Ethiopian"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, imageUploadRequest(t, "/api/analyze-image?page=2&limit=3"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success      bool `json:"success"`
		TotalResults int  `json:"totalResults"`
		TotalPages   int  `json:"totalPages"`
		CurrentPage  int  `json:"currentPage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !body.Success || body.TotalResults != 0 {
		t.Errorf("success=%v totalResults=%d, want true and 0", body.Success, body.TotalResults)
	}
	if body.TotalPages != 1 || body.CurrentPage != 2 {
		t.Errorf("paging = %d/%d, want totalPages 1 and currentPage 2", body.CurrentPage, body.TotalPages)
	}
}
