package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// BaseURL is the server address, with or without a scheme
	// (e.g. "localhost:8080" or "https://budget.example.com").
	BaseURL string

	// Timeout bounds every request; defaults to 15s.
	Timeout time.Duration
}

// HTTPServerAdapter is the HTTP implementation of [ServerAdapter]. It is safe
// for concurrent use; the stored token is shared by every [RecordClient]
// built on top of it.
type HTTPServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL and configures the underlying
// client with the resolved address and request timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (*HTTPServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &HTTPServerAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *HTTPServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *HTTPServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *HTTPServerAdapter) Register(ctx context.Context, user models.User) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/user/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var created models.UserResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	return created, nil
}

func (h *HTTPServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *HTTPServerAdapter) UpdateUser(ctx context.Context, user models.User) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put("/user/" + strconv.FormatInt(user.ID, 10))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var updated models.UserResponse
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode update user response: %w", err)
	}

	return updated, nil
}

func (h *HTTPServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
