package profiles

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, gen *fakeGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(gen))
	handler.ExtractText = func(data []byte, fileName string) (string, error) {
		return string(data), nil
	}

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func multipartBody(t *testing.T, fileName string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("resume", fileName)
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

func TestProfileEndpointReturnsProfile(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"name": "Jane Doe", "about": "summary", "skills": ["Go"]}`,
	}
	router := newTestRouter(t, gen)

	body, contentType := multipartBody(t, "cv.txt", []byte("Jane Doe, platform engineer"))
	req := httptest.NewRequest(http.MethodPost, "/upload_resume_for_linkedIn_profile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["name"] != "Jane Doe" {
		t.Fatalf("unexpected name: %v", payload["name"])
	}
	if payload["profile_picture"] != placeholderPicture {
		t.Fatalf("unexpected picture: %v", payload["profile_picture"])
	}
	if payload["profile_strength"] != float64(30) {
		t.Fatalf("unexpected strength: %v", payload["profile_strength"])
	}
}

func TestProfileEndpointRejectsUnsupportedExtension(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{})

	body, contentType := multipartBody(t, "cv.docx", []byte("text"))
	req := httptest.NewRequest(http.MethodPost, "/upload_resume_for_linkedIn_profile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestProfileEndpointReturns500WhenModelUnusable(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{response: "not json"})

	body, contentType := multipartBody(t, "cv.txt", []byte("some resume"))
	req := httptest.NewRequest(http.MethodPost, "/upload_resume_for_linkedIn_profile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}
