package lunchmoney

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/log"
	"github.com/hance08/lunchbox/internal/model"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://dev.lunchmoney.app"
	DefaultPageSize = 1000
)

type Options struct {
	BaseURL           string
	Token             string
	RequestsPerSecond float64
	Burst             int
	PageSize          int

	// HTTPClient is the transport underneath the bearer-token client.
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client talks to the Lunch Money v1 REST API.
type Client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	pageSize int
	log      *log.Logger
}

type ListParams struct {
	StartDate       civil.Date
	EndDate         civil.Date
	TagID           int64
	DebitAsNegative bool
}

type UpdateResult struct {
	Updated bool `json:"updated"`
}

type listResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	HasMore      bool                `json:"has_more"`
}

type updateRequest struct {
	Transaction model.TransactionUpdate `json:"transaction"`
}

func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Token) == "" {
		return nil, fmt.Errorf("lunch money access token is required")
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", opts.BaseURL, err)
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lunchmoney"})
	}

	ctx := context.Background()
	if opts.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, opts.HTTPClient)
	}
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}))

	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, burst),
		pageSize: pageSize,
		log:      logger,
	}, nil
}

// ListTransactions returns every transaction dated within the range,
// following has_more pagination.
func (c *Client) ListTransactions(ctx context.Context, p ListParams) ([]model.Transaction, error) {
	var all []model.Transaction
	offset := 0

	for {
		q := url.Values{}
		q.Set("start_date", p.StartDate.String())
		q.Set("end_date", p.EndDate.String())
		if p.TagID != 0 {
			q.Set("tag_id", strconv.FormatInt(p.TagID, 10))
		}
		if p.DebitAsNegative {
			q.Set("debit_as_negative", "true")
		}
		q.Set("offset", strconv.Itoa(offset))
		q.Set("limit", strconv.Itoa(c.pageSize))

		var page listResponse
		if err := c.do(ctx, http.MethodGet, "/v1/transactions?"+q.Encode(), nil, &page); err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}

		all = append(all, page.Transactions...)
		if !page.HasMore || len(page.Transactions) == 0 {
			break
		}
		offset += len(page.Transactions)
	}

	c.log.Debug("fetched transactions", "start", p.StartDate, "end", p.EndDate, "count", len(all))
	return all, nil
}

func (c *Client) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	var tx model.Transaction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/transactions/%d", id), nil, &tx); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	return tx, nil
}

// UpdateTransaction sends a sparse patch; absent fields stay untouched server-side.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) (UpdateResult, error) {
	if update.IsEmpty() {
		return UpdateResult{}, fmt.Errorf("empty update for transaction %d", id)
	}

	var res UpdateResult
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/transactions/%d", id), updateRequest{Transaction: update}, &res); err != nil {
		return UpdateResult{}, err
	}
	if !res.Updated {
		return res, &APIError{StatusCode: http.StatusOK, Messages: []string{fmt.Sprintf("transaction %d was not updated", id)}}
	}

	c.log.Info("updated transaction", "id", id)
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("request failed", "method", method, "path", path, "status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Messages: decodeErrorMessages(raw)}
	}
	if msgs := decodeErrorMessages(raw); len(msgs) > 0 {
		return &APIError{StatusCode: resp.StatusCode, Messages: msgs}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
