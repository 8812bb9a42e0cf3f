package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobcatalog/internal/config"
	"jobcatalog/internal/domain"
)

// Client talks to an Indeed-style JSON search API.
type Client struct {
	remote  config.Remote
	apiKey  string
	hc      *http.Client
	limiter *HostLimiter
}

type searchResponse struct {
	TotalResults int            `json:"totalResults"`
	Start        int            `json:"start"`
	End          int            `json:"end"`
	Results      []searchResult `json:"results"`
}

type searchResult struct {
	JobTitle string `json:"jobtitle"`
	Company  string `json:"company"`
	City     string `json:"city"`
	State    string `json:"state"`
	Snippet  string `json:"snippet"`
	Date     string `json:"date"`
	JobKey   string `json:"jobkey"`
	URL      string `json:"url"`
}

func NewClient(remote config.Remote, apiKey string, limiter *HostLimiter) *Client {
	timeout := time.Duration(remote.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if limiter == nil {
		limiter = NewHostLimiter(remote.ReqPerSec, remote.Burst)
	}
	return &Client{
		remote:  remote,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func (c *Client) pageURL(start int) (string, error) {
	u, err := url.Parse(c.remote.BaseURL)
	if err != nil {
		return "", fmt.Errorf("listings base url: %w", err)
	}
	q := u.Query()
	q.Set("publisher", c.apiKey)
	q.Set("q", c.remote.Query)
	q.Set("l", c.remote.Location)
	q.Set("co", c.remote.Country)
	q.Set("start", strconv.Itoa(start))
	q.Set("limit", strconv.Itoa(c.remote.PageSize))
	q.Set("format", "json")
	q.Set("v", "2")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchPage returns the listings starting at offset start, in feed order.
func (c *Client) FetchPage(ctx context.Context, start int) ([]domain.Job, error) {
	raw, err := c.pageURL(start)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.WaitURL(ctx, raw); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "jobcatalog/1.0 (+local)")
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listings get page %d: %w", start, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("listings page %d status %d", start, res.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("listings decode page %d: %w", start, err)
	}

	out := make([]domain.Job, 0, len(body.Results))
	for _, r := range body.Results {
		j := domain.NewJob(
			CleanText(r.JobTitle),
			CleanText(r.Company),
			CleanText(r.City),
			CleanText(r.State),
			StripHTML(r.Snippet),
			"",
			r.Date,
		)
		j.Key = r.JobKey
		j.URL = r.URL
		out = append(out, j)
	}
	return out, nil
}
