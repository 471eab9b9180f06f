package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Srijit125/ai-demo/internal/utils"
)

// DefaultURL is the hosted feature-extraction endpoint the service was
// built against.
const DefaultURL = "https://router.huggingface.co/hf-inference/models/intfloat/multilingual-e5-large/pipeline/feature-extraction"

// HFClient calls a Hugging Face inference endpoint that returns sentence
// embeddings for a text. The HTTP client carries a short fixed timeout so a
// stalled provider fails the request instead of hanging it.
type HFClient struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHFClient(url, apiKey string, timeout time.Duration) *HFClient {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HFClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type embedRequest struct {
	Inputs string `json:"inputs"`
}

func (c *HFClient) Embed(ctx context.Context, text string) ([]float32, error) {
	const op = "HFClient.Embed"

	body, err := json.Marshal(embedRequest{Inputs: text})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "marshaling request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "creating request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		code := utils.CodeUnavailable
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			code = utils.CodeTimeout
		}
		return nil, utils.E(code, op, "embedding provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.E(utils.CodeUnavailable, op, "embedding provider returned status "+resp.Status, nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "reading provider response", err)
	}

	vec, err := parseVector(raw)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "unparseable embedding response", err)
	}
	return vec, nil
}

// parseVector accepts the two shapes the feature-extraction pipeline emits:
// a single vector, or a batch of vectors of which the first row is ours.
func parseVector(raw []byte) ([]float32, error) {
	var nested [][]float32
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	var flat []float32
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	return nil, errors.New("response is not an embedding vector")
}
