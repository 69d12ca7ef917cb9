package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/pkg/errors"
)

// Client talks to an exchangerate-api compatible endpoint serving the
// latest rates for a single base currency.
type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Latest returns all rates relative to base and the base code the provider
// confirmed. Non-positive and non-finite rate values are dropped.
func (c *Client) Latest(ctx context.Context, base string) (map[string]float64, string, error) {
	const op = "api_client.exchangerate.Latest"

	url := c.baseURL + "/" + base

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, op)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, op)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%s: bad status: %s", op, resp.Status)
	}

	var result latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", errors.Wrap(err, op)
	}

	rates := make(map[string]float64, len(result.Rates))
	for code, rate := range result.Rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			continue
		}
		rates[code] = rate
	}

	if len(rates) == 0 {
		return nil, "", fmt.Errorf("%s: no rates in response", op)
	}

	if result.Base == "" {
		result.Base = base
	}

	return rates, result.Base, nil
}
