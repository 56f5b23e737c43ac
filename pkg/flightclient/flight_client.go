package flightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tripar/internal/flight"
	"tripar/pkg/logger"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// Client talks to the live flight API:
// GET {baseURL}/flights/flights?from&to&departure[&return] -> JSON array.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, baseURL string, logger logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

func (c *Client) searchURL(criteria flight.SearchCriteria) string {
	params := url.Values{}
	params.Set("from", strings.ToUpper(criteria.From))
	params.Set("to", strings.ToUpper(criteria.To))
	params.Set("departure", criteria.Departure)
	if criteria.IsRoundTrip() && criteria.ReturnDate != "" {
		params.Set("return", criteria.ReturnDate)
	}
	return fmt.Sprintf("%s/flights/flights?%s", c.baseURL, params.Encode())
}

// FetchFlights makes one request bounded by ctx. Transport errors, non-200
// statuses and bodies that are not a JSON array are all returned as errors.
func (c *Client) FetchFlights(ctx context.Context, criteria flight.SearchCriteria) ([]flight.RawFlight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(criteria), nil)
	if err != nil {
		c.logger.Error("failed to build flight api request", logger.Field{Key: "error", Value: err})
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("external api returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read flight api response: %w", err)
	}

	return c.decodeFlights(body)
}

// decodeFlights decodes element by element so one malformed flight does not
// discard the rest. Fields of the wrong type are left empty and defaulted
// later by the normalizer.
func (c *Client) decodeFlights(body []byte) ([]flight.RawFlight, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("failed to decode flight api response: %w", err)
	}

	flights := make([]flight.RawFlight, 0, len(elements))
	for i, el := range elements {
		var raw flight.RawFlight
		if err := json.Unmarshal(el, &raw); err != nil {
			c.logger.Warn("malformed flight record",
				logger.Field{Key: "index", Value: i},
				logger.Field{Key: "err", Value: err},
			)
		}
		flights = append(flights, raw)
	}
	return flights, nil
}
