package faceid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client talks to the external face-recognition service. All calls are a
// single synchronous attempt bounded by the configured timeout; callers are
// expected to treat failures as warnings, not hard errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type addFaceResponse struct {
	EmbeddingB64 string `json:"embedding_b64"`
}

// AddFace uploads a face photo and returns the embedding the service
// computed for it. A non-success status or a response without an
// embedding_b64 field means "no embedding available" and yields (nil, nil);
// only transport-level failures return an error.
func (c *Client) AddFace(ctx context.Context, image []byte, filename, name string) ([]byte, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to write image part: %w", err)
	}
	if err := form.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("failed to write name field: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	url := c.baseURL + "/api/faceid/add_face"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("face service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The service saw the image but could not produce an embedding.
		io.Copy(io.Discard, resp.Body)
		return nil, nil
	}

	var parsed addFaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, nil
	}
	if parsed.EmbeddingB64 == "" {
		return nil, nil
	}

	embedding, err := base64.StdEncoding.DecodeString(parsed.EmbeddingB64)
	if err != nil {
		return nil, nil
	}

	return embedding, nil
}
