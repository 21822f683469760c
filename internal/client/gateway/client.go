package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

// Client представляет HTTP реализацию Gateway
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// Compile-time check that Client implements Gateway
var _ Gateway = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Переносим Authorization заголовок при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken устанавливает bearer токен для последующих запросов
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// CreateRecord creates a record in the collection
func (c *Client) CreateRecord(ctx context.Context, collection string, record api.Record) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s", collection)
	if err := c.doRequest(ctx, http.MethodPost, path, record, &resp); err != nil {
		return nil, fmt.Errorf("create record failed: %w", err)
	}
	return &resp, nil
}

// UpdateRecordFields updates only the scalar fields of a record
func (c *Client) UpdateRecordFields(ctx context.Context, collection, id string, section models.Section, fields json.RawMessage) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s/%s", collection, url.PathEscape(id))
	req := api.UpdateFieldsRequest{Section: string(section), Fields: fields}
	if err := c.doRequest(ctx, http.MethodPatch, path, req, &resp); err != nil {
		return nil, fmt.Errorf("update record fields failed: %w", err)
	}
	return &resp, nil
}

// MergeMarks atomically reconciles a member's mark collection server-side
func (c *Client) MergeMarks(ctx context.Context, memberID string, marks []api.Mark) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s/%s/marks/merge", api.CollectionMembers, url.PathEscape(memberID))
	req := api.MergeMarksRequest{Marks: marks}
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("merge marks failed: %w", err)
	}
	return &resp, nil
}

// DeleteRecord removes a record
func (c *Client) DeleteRecord(ctx context.Context, collection, id string, section models.Section) error {
	path := fmt.Sprintf("/api/v1/%s/%s%s", collection, url.PathEscape(id), sectionQuery(section))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete record failed: %w", err)
	}
	return nil
}

// UpsertRecord creates the record or fully replaces an existing one
func (c *Client) UpsertRecord(ctx context.Context, collection string, record api.Record) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s/%s", collection, url.PathEscape(record.ID))
	if err := c.doRequest(ctx, http.MethodPut, path, record, &resp); err != nil {
		return nil, fmt.Errorf("upsert record failed: %w", err)
	}
	return &resp, nil
}

// FetchAll returns every record of the collection scoped to the section
func (c *Client) FetchAll(ctx context.Context, collection string, section models.Section) ([]api.Record, error) {
	var resp api.RecordsResponse
	path := fmt.Sprintf("/api/v1/%s%s", collection, sectionQuery(section))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch all failed: %w", err)
	}
	return resp.Records, nil
}

// FetchOne returns a single record
func (c *Client) FetchOne(ctx context.Context, collection, id string, section models.Section) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/api/v1/%s/%s%s", collection, url.PathEscape(id), sectionQuery(section))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch one failed: %w", err)
	}
	return &resp, nil
}

// AppendAuditEntry appends an entry to the server-side audit log
func (c *Client) AppendAuditEntry(ctx context.Context, entry json.RawMessage) error {
	req := api.AuditEntryRequest{Entry: entry}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/audit", req, nil); err != nil {
		return fmt.Errorf("append audit entry failed: %w", err)
	}
	return nil
}

func sectionQuery(section models.Section) string {
	if section == "" {
		return ""
	}
	return "?section=" + url.QueryEscape(string(section))
}

// doRequest выполняет HTTP запрос.
// Транспортные сбои заворачиваются в ErrUnavailable, ответы сервера
// со статусом вне 2xx - в StatusError (404 - в ErrNotFound).
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &StatusError{Code: resp.StatusCode, Message: errResp.Message}
		}
		return &StatusError{Code: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
