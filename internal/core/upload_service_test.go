package core

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newHostStub(t *testing.T, status int, body string, gotForm *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("host received non-multipart request: %v", err)
		}
		if gotForm != nil {
			form := map[string]string{"reqtype": r.FormValue("reqtype")}
			if file, header, err := r.FormFile("fileToUpload"); err == nil {
				content, _ := io.ReadAll(file)
				file.Close()
				form["filename"] = header.Filename
				form["content"] = string(content)
			}
			*gotForm = form
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
}

func TestUploadNormalizesPrefixedReference(t *testing.T) {
	var form map[string]string
	host := newHostStub(t, http.StatusOK, "https://host/abc123\n", &form)
	defer host.Close()

	svc := NewUploadService(host.Client(), host.URL, "https://host/")
	url, err := svc.Upload(context.Background(), []byte("image-bytes"), "photo.png", "image/png")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "https://host/abc123" {
		t.Errorf("url = %q, want %q", url, "https://host/abc123")
	}
	if form["reqtype"] != "fileupload" {
		t.Errorf("reqtype = %q, want fileupload", form["reqtype"])
	}
	if form["filename"] != "photo.png" || form["content"] != "image-bytes" {
		t.Errorf("forwarded file = %q/%q, want photo.png/image-bytes", form["filename"], form["content"])
	}
}

func TestUploadPrefixesBareReference(t *testing.T) {
	host := newHostStub(t, http.StatusOK, "abc123\r\n", nil)
	defer host.Close()

	svc := NewUploadService(host.Client(), host.URL, "https://host/")
	url, err := svc.Upload(context.Background(), []byte("x"), "f.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "https://host/abc123" {
		t.Errorf("url = %q, want %q", url, "https://host/abc123")
	}
}

func TestUploadHostFailureIsUpstreamError(t *testing.T) {
	host := newHostStub(t, http.StatusBadGateway, "nope", nil)
	defer host.Close()

	svc := NewUploadService(host.Client(), host.URL, "https://host/")
	_, err := svc.Upload(context.Background(), []byte("x"), "f.jpg", "image/jpeg")
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("error = %v, want ErrUploadFailed", err)
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc := NewUploadService(nil, "http://unused.invalid", "https://host/")
	_, err := svc.Upload(context.Background(), nil, "f.jpg", "image/jpeg")
	if !errors.Is(err, ErrNoFile) {
		t.Fatalf("error = %v, want ErrNoFile", err)
	}
}
