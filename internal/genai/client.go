// Package genai provides a minimal client for the Gemini API: file uploads,
// file status reads, and single-shot content generation.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// File readiness states reported by the Gemini file store.
const (
	FileStateProcessing = "PROCESSING"
	FileStateActive     = "ACTIVE"
	FileStateFailed     = "FAILED"
)

// Client talks to the Gemini REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Config holds Gemini client configuration.
type Config struct {
	APIKey  string
	Model   string // e.g., "gemini-2.0-flash"
	BaseURL string // Default: https://generativelanguage.googleapis.com
	Timeout time.Duration
}

// NewClient creates a new Gemini client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// File is a handle to a document held by the Gemini file store.
type File struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	State    string `json:"state"`
	MIMEType string `json:"mimeType,omitempty"`
}

// uploadResponse wraps the file returned by the upload endpoint.
type uploadResponse struct {
	File File `json:"file"`
}

// UploadFile uploads the file at path to the Gemini file store using the raw
// upload protocol and returns its handle. The returned state is usually
// PROCESSING; callers poll GetFile until the store reports a terminal state.
func (c *Client) UploadFile(ctx context.Context, path, mimeType string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/v1beta/files", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("upload error %d: %s", resp.StatusCode, string(body))
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if parsed.File.Name == "" {
		return nil, fmt.Errorf("upload response missing file name")
	}

	return &parsed.File, nil
}

// GetFile fetches the current handle for a previously uploaded file.
// The name is the server-assigned identifier, e.g. "files/abc123".
func (c *Client) GetFile(ctx context.Context, name string) (*File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1beta/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("create file status request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("file status request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("file status error %d: %s", resp.StatusCode, string(body))
	}

	var file File
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("decode file status response: %w", err)
	}

	return &file, nil
}

// Part is one piece of content in a generation request: either text or a
// reference to an uploaded file.
type Part struct {
	Text     string    `json:"text,omitempty"`
	FileData *FileData `json:"fileData,omitempty"`
}

// FileData references an uploaded file by URI.
type FileData struct {
	MIMEType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

// Content groups parts under a role.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerateRequest is the generateContent request body.
type GenerateRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// generateResponse is the subset of the generateContent response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

// apiError is the standard Google API error envelope.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateContent performs a single non-streaming generation call and returns
// the concatenated text of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, genReq GenerateRequest) (string, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := c.baseURL + "/v1beta/models/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("generate error %d: %s", resp.StatusCode, string(body))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("generate error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("generate returned no candidates")
	}

	var text string
	for _, p := range parsed.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
