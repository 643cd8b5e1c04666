package mdcat

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []RenderOption
}

// HTTPRender fetches Markdown over HTTP(S) and renders it like a file. Any
// failure before the body is available is reported as an *OpenError.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("stream http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("stream http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return &OpenError{Name: req.URL, Err: err}
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return &OpenError{Name: req.URL, Err: fmt.Errorf("unsupported scheme %q", httpReq.URL.Scheme)}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return &OpenError{Name: req.URL, Err: err}
	}
	defer resp.Body.Close()
	// A non-2xx response is reported like a missing file.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &OpenError{Name: req.URL, Err: fmt.Errorf("status %s", resp.Status)}
	}
	return Render(RenderRequest{
		Reader:  resp.Body,
		Writer:  req.Writer,
		Options: req.Options,
	})
}
