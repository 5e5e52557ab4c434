package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

type uploadService struct {
	httpClient *http.Client
	endpoint   string
	baseURL    string
}

// NewUploadService creates an UploadService that forwards files to the
// anonymous image host at endpoint. baseURL is the canonical prefix of the
// host's file URLs; returned references are always re-anchored to it. The
// httpClient is injected so callers control the upload deadline.
func NewUploadService(httpClient *http.Client, endpoint, baseURL string) UploadService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &uploadService{
		httpClient: httpClient,
		endpoint:   endpoint,
		baseURL:    baseURL,
	}
}

// Upload re-posts the file as a multipart payload and normalizes the
// host's plaintext reply into one stable, fully-qualified URL.
func (s *uploadService) Upload(ctx context.Context, content []byte, filename, contentType string) (string, error) {
	if len(content) == 0 {
		return "", ErrNoFile
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("reqtype", "fileupload"); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="fileToUpload"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading host response: %v", ErrUploadFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: host returned status %d", ErrUploadFailed, resp.StatusCode)
	}

	return s.normalizeReference(string(respBody)), nil
}

// normalizeReference strips embedded newlines and any pre-existing host
// prefix from the raw reference, then re-prefixes the canonical base URL.
// "https://host/abc123\n" and "abc123" both normalize to
// "https://host/abc123".
func (s *uploadService) normalizeReference(raw string) string {
	ref := strings.ReplaceAll(raw, "\n", "")
	ref = strings.ReplaceAll(ref, "\r", "")
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, s.baseURL)
	return s.baseURL + ref
}
