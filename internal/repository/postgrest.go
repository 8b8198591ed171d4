package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"posterseed/internal/model"
	"posterseed/internal/schema"
)

// PostgRESTRepository writes through a Supabase project's REST endpoint.
type PostgRESTRepository struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewPostgREST(baseURL, apiKey string) *PostgRESTRepository {
	return &PostgRESTRepository{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// StatusError is a non-2xx answer from PostgREST.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("postgrest status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("postgrest status %d: %s", e.StatusCode, e.Message)
}

type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (r *PostgRESTRepository) Upsert(ctx context.Context, table string, p model.Product, conflictKeys []string) (int64, error) {
	if len(conflictKeys) == 0 {
		return 0, fmt.Errorf("upsert into %s: no conflict keys", table)
	}
	for _, k := range conflictKeys {
		if err := schema.ValidateIdentifier(k); err != nil {
			return 0, err
		}
	}

	q := url.Values{}
	q.Set("on_conflict", strings.Join(conflictKeys, ","))
	return r.write(ctx, table, q, "resolution=merge-duplicates,return=representation", p)
}

func (r *PostgRESTRepository) Insert(ctx context.Context, table string, p model.Product) (int64, error) {
	return r.write(ctx, table, nil, "return=representation", p)
}

// ExecRaw calls the project's `sql` database function, which must exist and
// execute its argument.
func (r *PostgRESTRepository) ExecRaw(ctx context.Context, query string) error {
	body, err := json.Marshal(map[string]string{"sql": query})
	if err != nil {
		return err
	}

	resp, err := r.do(ctx, r.BaseURL+"/rest/v1/rpc/sql", "", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (r *PostgRESTRepository) write(ctx context.Context, table string, q url.Values, prefer string, p model.Product) (int64, error) {
	if err := schema.ValidateIdentifier(table); err != nil {
		return 0, err
	}

	body, err := json.Marshal([]model.Product{p})
	if err != nil {
		return 0, fmt.Errorf("encode %q: %w", p.Title, err)
	}

	endpoint := r.BaseURL + "/rest/v1/" + table
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	resp, err := r.do(ctx, endpoint, prefer, body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return 0, err
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return int64(len(rows)), nil
}

func (r *PostgRESTRepository) do(ctx context.Context, endpoint, prefer string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	req.Header.Set("apikey", r.APIKey)
	req.Header.Set("Authorization", "Bearer "+r.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	statusErr := &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}

	var pgErr postgrestError
	if json.Unmarshal(raw, &pgErr) == nil && pgErr.Message != "" {
		statusErr.Code = pgErr.Code
		statusErr.Message = pgErr.Message
		if pgErr.Details != "" {
			statusErr.Message += ": " + pgErr.Details
		}
	}
	return statusErr
}
