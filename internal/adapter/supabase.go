package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/utils"
	"github.com/MKhiriev/shadbase/models"
)

const (
	defaultRequestTimeout = 10 * time.Second

	healthPath = "/auth/v1/health"
	userPath   = "/auth/v1/user"
)

type supabaseClient struct {
	client *utils.HTTPClient

	url     string
	key     string
	keyInfo KeyInfo

	logger *logger.Logger
}

// NewSupabaseClient constructs the REST implementation of [SupabaseClient]
// from the resolved backend-service record.
//
// It is the single place where credentials are checked: an empty URL yields
// [ErrEmptySupabaseURL], an empty key [ErrEmptySupabaseKey], and a URL
// without an http(s) scheme and host [ErrInvalidSupabaseURL]. Values are used
// exactly as resolved; only a trailing slash is dropped from the base URL.
func NewSupabaseClient(cfg config.Supabase, log *logger.Logger) (SupabaseClient, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.URL == "" {
		return nil, ErrEmptySupabaseURL
	}
	if cfg.Key == "" {
		return nil, ErrEmptySupabaseKey
	}

	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	keyInfo := InspectKey(cfg.Key)
	if keyInfo.Privileged() {
		log.Warn().
			Str("key_kind", string(keyInfo.Kind)).
			Msg("supabase key bypasses row level security and is exposed through the public runtime config")
	}
	if keyInfo.Expired(time.Now()) {
		log.Warn().Time("expires_at", keyInfo.ExpiresAt).Msg("supabase key has expired")
	}

	client := utils.NewHTTPClient(baseURL, defaultRequestTimeout)
	client.SetHeader("apikey", cfg.Key)

	return &supabaseClient{
		client:  client,
		url:     cfg.URL,
		key:     cfg.Key,
		keyInfo: keyInfo,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSupabaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must include http(s) scheme and host", ErrInvalidSupabaseURL, raw)
	}

	return strings.TrimRight(raw, "/"), nil
}

// URL implements [SupabaseClient].
func (s *supabaseClient) URL() string {
	return s.url
}

// KeyInfo implements [SupabaseClient].
func (s *supabaseClient) KeyInfo() KeyInfo {
	return s.keyInfo
}

// Health implements [SupabaseClient]. It calls GET /auth/v1/health.
func (s *supabaseClient) Health(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.key).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetUser implements [SupabaseClient]. It calls GET /auth/v1/user with
// accessToken as the bearer token.
func (s *supabaseClient) GetUser(ctx context.Context, accessToken string) (models.SupabaseUser, error) {
	if accessToken == "" {
		return models.SupabaseUser{}, ErrEmptyAccessToken
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get(userPath)
	if err != nil {
		return models.SupabaseUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SupabaseUser{}, err
	}

	var user models.SupabaseUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.SupabaseUser{}, fmt.Errorf("decode user response: %w", err)
	}

	return user, nil
}
