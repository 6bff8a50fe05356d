package extract

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupExtractRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHandler().RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postFile(t *testing.T, router *gin.Engine, fileName, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestExtractEndpointTxt(t *testing.T) {
	router := setupExtractRouter(t)

	resp := postFile(t, router, "resume.txt", "text/plain", []byte("张三\n前端工程师"))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Text != "张三\n前端工程师" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestExtractEndpointDOCX(t *testing.T) {
	router := setupExtractRouter(t)
	data := buildDOCX(t, sampleDocumentXML)

	resp := postFile(t, router, "resume.docx", mimeDOCX, data)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestExtractEndpointMissingFile(t *testing.T) {
	router := setupExtractRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestExtractEndpointUnsupportedType(t *testing.T) {
	router := setupExtractRouter(t)

	resp := postFile(t, router, "resume.html", "text/html", []byte("<html></html>"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "不支持的文件类型，请上传PDF、DOCX或TXT文件" {
		t.Fatalf("unexpected message %q", body["error"])
	}
}

func TestExtractEndpointEmptyResult(t *testing.T) {
	router := setupExtractRouter(t)

	resp := postFile(t, router, "resume.txt", "text/plain", []byte("   \n  "))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %d", resp.Code)
	}
}
