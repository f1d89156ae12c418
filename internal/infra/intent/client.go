// Package intent implements the client for the external natural-language
// intent service. Parsing happens entirely on the remote side; this client
// only validates the structured answer.
package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"foodmap/config"
	"foodmap/internal/domain/entity"
	"foodmap/internal/domain/service"
	"foodmap/internal/errors"
)

type restIntentParser struct {
	baseURL string
	timeout func(ctx context.Context) (context.Context, context.CancelFunc)
	client  *http.Client
}

// NewIntentParser is the constructor for the intent service client. Returns
// nil when the service is disabled in config, which the search layer treats
// as "intent search unavailable".
func NewIntentParser(cfg *config.Config) service.IntentParser {
	if cfg.Intent == nil || !cfg.Intent.Enabled {
		return nil
	}

	timeout := cfg.Intent.Timeout

	return &restIntentParser{
		baseURL: cfg.Intent.BaseURL,
		timeout: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeout)
		},
		client: http.DefaultClient,
	}
}

type parseRequest struct {
	Query string `json:"query"`
}

type parseResponse struct {
	PlaceType    string `json:"place_type"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
}

// ParseQuery sends the raw query to the intent service and validates the
// structured interpretation it returns.
func (p *restIntentParser) ParseQuery(ctx context.Context, query string) (*service.SearchIntent, error) {
	payload, err := json.Marshal(parseRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, "encode intent request")
	}

	reqCtx, cancel := p.timeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build intent request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call intent service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("intent service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read intent response")
	}

	var decoded parseResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, "decode intent response")
	}

	intent := &service.SearchIntent{
		Neighborhood: decoded.Neighborhood,
		Address:      decoded.Address,
	}

	// An unknown place type from the remote side is dropped rather than
	// propagated into store queries.
	if pt := entity.PlaceType(decoded.PlaceType); pt.IsValid() {
		intent.PlaceType = pt
	}

	return intent, nil
}
