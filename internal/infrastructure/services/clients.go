package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"
)

// HTTP clients for the neighbouring platform services. Each call wraps one
// GET/PATCH against the service's JSON API; an absent record comes back as
// a zero value with a nil error, matching the lookup interface contract.

const defaultTimeout = 10 * time.Second

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string) Client {
	return Client{baseURL: baseURL, http: &http.Client{Timeout: defaultTimeout}}
}

func getJSON[T any](ctx context.Context, c Client, path string) (T, error) {
	var zero T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return zero, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return zero, nil
	}
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return env.Data, nil
}

type QuoteClient struct{ Client }

var _ interfaces.IQuoteService = (*QuoteClient)(nil)

func NewQuoteClient(baseURL string) *QuoteClient {
	return &QuoteClient{newClient(baseURL)}
}

func (c *QuoteClient) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	return getJSON[entities.Quote](ctx, c.Client, "/v1/quotes/"+id)
}

type ScopeOfWorkClient struct{ Client }

var _ interfaces.IScopeOfWorkService = (*ScopeOfWorkClient)(nil)

func NewScopeOfWorkClient(baseURL string) *ScopeOfWorkClient {
	return &ScopeOfWorkClient{newClient(baseURL)}
}

func (c *ScopeOfWorkClient) GetScopeOfWork(ctx context.Context, id string) (entities.ScopeOfWork, error) {
	return getJSON[entities.ScopeOfWork](ctx, c.Client, "/v1/scopes/"+id)
}

type ProjectClient struct{ Client }

var _ interfaces.IProjectService = (*ProjectClient)(nil)

func NewProjectClient(baseURL string) *ProjectClient {
	return &ProjectClient{newClient(baseURL)}
}

func (c *ProjectClient) GetProject(ctx context.Context, id string) (entities.Project, error) {
	return getJSON[entities.Project](ctx, c.Client, "/v1/projects/"+id)
}

func (c *ProjectClient) SetProjectStatus(ctx context.Context, id, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/v1/projects/"+id+"/status", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("PATCH project %s status: unexpected status %d", id, resp.StatusCode)
	}
	return nil
}

type UserClient struct{ Client }

var _ interfaces.IUserService = (*UserClient)(nil)

func NewUserClient(baseURL string) *UserClient {
	return &UserClient{newClient(baseURL)}
}

func (c *UserClient) GetUser(ctx context.Context, id string) (entities.UserProfile, error) {
	return getJSON[entities.UserProfile](ctx, c.Client, "/v1/users/"+id)
}
