package resumes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-assist/internal/shared/storage/cache"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore(NewMemoryRepo(), cache.NewMemory())
	handler := NewHandler(store)
	handler.ExtractText = func(data []byte, fileName string) (string, error) {
		return string(data), nil
	}

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, store
}

func multipartBody(t *testing.T, field, fileName string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(contents); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadStoresResumeAndReturnsID(t *testing.T) {
	router, store := newTestRouter(t)

	body, contentType := multipartBody(t, "resume", "cv.pdf", []byte("Go engineer, eight years"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var created uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatalf("expected resume_id, got empty")
	}
	if created.Message != "Resume uploaded successfully" {
		t.Fatalf("unexpected message: %q", created.Message)
	}

	text, err := store.Get(req.Context(), created.ResumeID)
	if err != nil {
		t.Fatalf("Get stored resume: %v", err)
	}
	if text != "Go engineer, eight years" {
		t.Fatalf("unexpected stored text: %q", text)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/resume", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := multipartBody(t, "resume", "cv.docx", []byte("text"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	big := bytes.Repeat([]byte("a"), maxUploadBytes+1)
	body, contentType := multipartBody(t, "resume", "cv.pdf", big)
	req := httptest.NewRequest(http.MethodPost, "/api/resume", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", resp.Code)
	}
}
