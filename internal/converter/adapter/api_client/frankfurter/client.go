package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Client talks to a frankfurter compatible time-series endpoint. A range
// query looks like /2024-01-01..2024-01-08?from=USD&to=BRL and the response
// carries one rate mapping per trading day.
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

type rangeResponse struct {
	Rates map[string]map[string]float64 `json:"rates"`
}

// Range returns the per-date rate mappings for the given currency pair over
// [start, end]. Keys of the outer map are ISO 8601 dates.
func (c *Client) Range(ctx context.Context, start, end time.Time, from, to string) (map[string]map[string]float64, error) {
	const op = "api_client.frankfurter.Range"

	u, err := url.Parse(fmt.Sprintf("%s/%s..%s",
		c.baseURL,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	q := u.Query()
	q.Set("from", from)
	q.Set("to", to)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: bad status: %s", op, resp.Status)
	}

	var result rangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, op)
	}

	if result.Rates == nil {
		return nil, fmt.Errorf("%s: no rates in response", op)
	}

	return result.Rates, nil
}
