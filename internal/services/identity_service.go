package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"translate-api/internal/config"
	"translate-api/internal/pkg/errors"
)

// Identity is the verified external identity returned by the auth provider.
type Identity struct {
	AuthUserID string `json:"auth_user_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

type IdentityService interface {
	// Verify exchanges a bearer token for the identity it belongs to. Any
	// failure, including network errors, is reported as ErrUnauthenticated.
	Verify(ctx context.Context, accessToken string) (*Identity, error)
}

type supabaseIdentityService struct {
	baseURL     string
	serviceKey  string
	client      *http.Client
	cache       CacheService
	identityTTL time.Duration
}

// NewIdentityService verifies sessions against the Supabase auth endpoint.
// cache may be nil, in which case every request hits the provider.
func NewIdentityService(cfg *config.AppConfig, cache CacheService, identityTTL time.Duration) IdentityService {
	return &supabaseIdentityService{
		baseURL:     strings.TrimRight(cfg.SupabaseURL, "/"),
		serviceKey:  cfg.SupabaseServiceKey,
		client:      &http.Client{Timeout: 10 * time.Second},
		cache:       cache,
		identityTTL: identityTTL,
	}
}

type authUserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

func (s *supabaseIdentityService) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	if accessToken == "" {
		return nil, errors.ErrUnauthenticated
	}

	if identity := s.cachedIdentity(ctx, accessToken); identity != nil {
		return identity, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		// No retry: a single network failure counts as unauthenticated.
		return nil, errors.ErrUnauthenticated
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ErrUnauthenticated
	}

	var payload authUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if payload.ID == "" {
		return nil, errors.ErrUnauthenticated
	}

	identity := &Identity{
		AuthUserID: payload.ID,
		Email:      payload.Email,
		Name:       payload.UserMetadata.FullName,
	}
	if identity.Name == "" {
		identity.Name = payload.Email
	}

	if s.cache != nil {
		// Cache failures are ignored; the next request verifies again.
		_ = s.cache.Set(ctx, identityCacheKey(accessToken), identity, s.identityTTL)
	}

	return identity, nil
}

func (s *supabaseIdentityService) cachedIdentity(ctx context.Context, accessToken string) *Identity {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, identityCacheKey(accessToken))
	if err != nil || cached == "" {
		return nil
	}

	var identity Identity
	if err := json.Unmarshal([]byte(cached), &identity); err != nil || identity.AuthUserID == "" {
		return nil
	}
	return &identity
}

func identityCacheKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return "identity:" + hex.EncodeToString(sum[:])
}
