// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

// Client implements homework.StatusClient against the Practicum homework statuses API.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
	}
}

// Fetch performs one GET for the window starting at cursor and returns the decoded body.
func (c *Client) Fetch(ctx context.Context, cursor int64) (any, error) {
	params := url.Values{}
	params.Set("from_date", strconv.FormatInt(cursor, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return nil, &homework.RequestError{Endpoint: c.endpoint, Cursor: cursor, Err: err}
	}
	query := req.URL.Query()
	for k, v := range params {
		query[k] = v
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &homework.RequestError{Endpoint: c.endpoint, Cursor: cursor, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &homework.HTTPError{StatusCode: resp.StatusCode, Endpoint: c.endpoint, Params: params}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &homework.RequestError{Endpoint: c.endpoint, Cursor: cursor, Err: fmt.Errorf("reading body: %w", err)}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", homework.ErrDecode, err)
	}
	return decoded, nil
}
