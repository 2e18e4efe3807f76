package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nluthra2001/cpusched/internal/simulation"
)

var ErrStatus = errors.New("unexpected status")

// Client talks to a remote simulator server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) Algorithms(ctx context.Context) ([]simulation.AlgorithmInfo, error) {
	var infos []simulation.AlgorithmInfo
	if err := c.do(ctx, http.MethodGet, "/algorithms", nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// Simulate runs req on the server and returns its report.
func (c *Client) Simulate(ctx context.Context, req simulation.Request) (simulation.Report, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return simulation.Report{}, fmt.Errorf("%w: encoding request", err)
	}
	var report simulation.Report
	if err := c.do(ctx, http.MethodPost, "/simulate", body, &report); err != nil {
		return simulation.Report{}, err
	}
	return report, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: building request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s", err, method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var e simulation.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, e.Error)
		}
		return fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response", err)
	}
	return nil
}
