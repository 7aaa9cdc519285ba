package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

// Config controls how the PokeAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches raw entity payloads from PokeAPI.
type Client struct {
	baseURL      string
	httpClient   httpDoer
	maxBodyBytes int64
}

// NewClient constructs a PokeAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		maxBodyBytes: maxPayloadBytes,
	}
}

// FetchEntity issues a single GET for the identifier and returns the body unparsed.
// Any non-2xx status is reported as a *providers.StatusError; transport failures
// (dial, DNS, timeout) as a *providers.UnavailableError. A success body larger
// than maxPayloadBytes is treated as malformed. There are no retries.
func (c *Client) FetchEntity(ctx context.Context, identifier string) (providers.Payload, error) {
	req, err := c.buildRequest(ctx, identifier)
	if err != nil {
		return nil, &providers.UnavailableError{Provider: providerName, Identifier: identifier, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.UnavailableError{
			Provider:   providerName,
			Identifier: identifier,
			Timeout:    isTimeout(err),
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.StatusError{
			Provider:   providerName,
			Identifier: identifier,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &providers.UnavailableError{
			Provider:   providerName,
			Identifier: identifier,
			Timeout:    isTimeout(err),
			Err:        err,
		}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, fmt.Errorf("pokeapi: payload for %q exceeds %d bytes: %w", identifier, c.maxBodyBytes, providers.ErrMalformedPayload)
	}
	return providers.Payload(body), nil
}

func (c *Client) buildRequest(ctx context.Context, identifier string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(identifier), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
