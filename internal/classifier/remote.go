package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// Remote sends the preprocessed image to a model server that answers with
// raw logits, one per label.
type Remote struct {
	endpoint  string
	labels    []string
	inputSize int
	client    *http.Client
}

type logitsResponse struct {
	Logits []float64 `json:"logits"`
}

func NewRemote(endpoint string, labels []string, inputSize int, timeout time.Duration) *Remote {
	return &Remote{
		endpoint:  endpoint,
		labels:    labels,
		inputSize: inputSize,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Classify(ctx context.Context, data []byte) (*Result, error) {
	img, err := Preprocess(data, r.inputSize)
	if err != nil {
		return nil, err
	}
	body, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("%w: encode input: %v", ErrPrediction, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: model server returned %d: %s", ErrPrediction, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out logitsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrPrediction, err)
	}
	if len(out.Logits) != len(r.labels) {
		return nil, fmt.Errorf("%w: got %d logits for %d labels", ErrPrediction, len(out.Logits), len(r.labels))
	}

	idx, prob := top(softmax(out.Logits))
	return &Result{Label: r.labels[idx], Confidence: roundConfidence(prob * 100)}, nil
}

func softmax(logits []float64) []float64 {
	peak := math.Inf(-1)
	for _, v := range logits {
		peak = math.Max(peak, v)
	}
	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(v - peak)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// top returns the first index holding the highest probability.
func top(probs []float64) (int, float64) {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best, probs[best]
}
