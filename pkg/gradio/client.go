// Package gradio is a client for the HTTP prediction API exposed by hosted Gradio apps.
package gradio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const maxErrorBody = 512

// Image is a decoded prediction output.
type Image struct {
	ContentType string
	Data        []byte
}

// DataURI encodes the image as a base64 data URI.
func (i Image) DataURI() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

type predictRequest struct {
	Data []any `json:"data"`
}

type predictResponse struct {
	Data     []json.RawMessage `json:"data"`
	Duration float64           `json:"duration,omitempty"`
}

// fileRef is the object form Gradio uses for file outputs.
type fileRef struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Name string `json:"name"`
}

// Client posts prediction requests to a single Gradio app.
// Every outbound request waits on a shared rate limiter.
type Client struct {
	http     *http.Client
	baseURL  string
	endpoint string
	token    string
	maxFile  int64
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// New creates a Client from the given configuration. A non-positive Rate disables throttling.
func New(cfg *Config, logger *slog.Logger) *Client {
	limit := rate.Limit(cfg.Rate)
	if cfg.Rate <= 0 {
		limit = rate.Inf
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		http:     &http.Client{Timeout: cfg.TimeoutDuration()},
		baseURL:  base,
		endpoint: base + cfg.PredictPath,
		token:    cfg.Token,
		maxFile:  cfg.MaxFileSizeBytes(),
		limiter:  rate.NewLimiter(limit, cfg.Burst),
		logger:   logger.With("system", "gradio"),
	}
}

// Predict posts {"data": data} to the prediction endpoint and returns the output slots.
func (c *Client) Predict(ctx context.Context, data ...any) ([]json.RawMessage, error) {
	if data == nil {
		data = []any{}
	}
	body, err := json.Marshal(predictRequest{Data: data})
	if err != nil {
		return nil, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	c.logger.Debug("prediction complete", "outputs", len(out.Data), "duration", time.Since(start))
	return out.Data, nil
}

// DecodeImage reads one prediction output as an image. The output may be a
// data URI string, a plain URL string, or a file object with url, path, or name.
// URLs and file paths are fetched from the app.
func (c *Client) DecodeImage(ctx context.Context, raw json.RawMessage) (Image, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.HasPrefix(s, "data:") {
			return ParseDataURI(s)
		}
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			return c.fetch(ctx, s)
		}
		return Image{}, fmt.Errorf("%w: unrecognized string output", ErrNotImage)
	}

	var ref fileRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrNotImage, err)
	}

	switch {
	case ref.URL != "":
		return c.fetch(ctx, ref.URL)
	case ref.Path != "":
		return c.fetch(ctx, c.baseURL+"/file="+ref.Path)
	case ref.Name != "":
		return c.fetch(ctx, c.baseURL+"/file="+ref.Name)
	}
	return Image{}, fmt.Errorf("%w: file output has no location", ErrNotImage)
}

// ParseDataURI decodes a base64 data URI such as "data:image/png;base64,...".
func ParseDataURI(s string) (Image, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing data: scheme", ErrNotImage)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("%w: malformed data URI", ErrNotImage)
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return Image{}, fmt.Errorf("%w: data URI is not base64", ErrNotImage)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return Image{}, fmt.Errorf("%w: media type %q", ErrNotImage, mediaType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrNotImage, err)
	}
	return Image{ContentType: mediaType, Data: data}, nil
}

func (c *Client) fetch(ctx context.Context, url string) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Image{}, fmt.Errorf("build file request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxFile+1))
	if err != nil {
		return Image{}, fmt.Errorf("read file output: %w", err)
	}
	if int64(len(data)) > c.maxFile {
		return Image{}, fmt.Errorf("%w: over %d bytes", ErrFileTooLarge, c.maxFile)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return Image{}, fmt.Errorf("%w: fetched %s", ErrNotImage, contentType)
	}
	return Image{ContentType: contentType, Data: data}, nil
}

// do waits on the limiter, attaches auth, and converts non-2xx responses into *StatusError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}
	return resp, nil
}
