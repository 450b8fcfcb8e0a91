package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Client uploads files to the external blob storage service and returns the
// durable URL. The service is a black box: the API only ever stores the URL
// string and never inspects file contents.
type Client struct {
	uploadURL string
	apiKey    string
	folder    string
	http      *http.Client
}

type Config struct {
	UploadURL string
	APIKey    string
	Folder    string
}

// UploadResult is the blob service's response.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func NewClient(cfg Config) *Client {
	folder := cfg.Folder
	if folder == "" {
		folder = "job-board-uploads"
	}
	return &Client{
		uploadURL: cfg.UploadURL,
		apiKey:    cfg.APIKey,
		folder:    folder,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured reports whether an upload endpoint is present.
func (c *Client) IsConfigured() bool {
	return c.uploadURL != ""
}

// Upload streams a file to the blob service. The public id is derived from
// the uploading user so repeated uploads do not collide.
func (c *Client) Upload(userID, filename string, contentType string, r io.Reader) (*UploadResult, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("storage: upload endpoint not configured")
	}

	publicID := fmt.Sprintf("%s_%s%s", userID, uuid.NewString(), filepath.Ext(filename))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	_ = w.WriteField("folder", c.folder)
	_ = w.WriteField("public_id", publicID)
	_ = w.WriteField("content_type", contentType)
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("storage: upload failed with %s: %s", resp.Status, string(body))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("storage: decode upload response: %w", err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("storage: upload response carries no url")
	}
	return &result, nil
}
