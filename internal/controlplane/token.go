package controlplane

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenResponse is the OIDC client_credentials grant response shape.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// tokenSource fetches and caches a bearer token from the realm's
// openid-connect token endpoint, refreshing proactively at 2/3 of the
// token's reported lifetime (spec.md §6).
type tokenSource struct {
	endpoint     string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenSource(tokenEndpoint, clientID, clientSecret string, httpClient *http.Client) *tokenSource {
	return &tokenSource{
		endpoint:     tokenEndpoint,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
	}
}

// Token returns a currently valid bearer token, refreshing if none is
// cached or the cached one is past its 2/3-life refresh point.
func (t *tokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Now().Before(t.expiresAt) {
		return t.token, nil
	}
	return t.refreshLocked(ctx)
}

// ForceRefresh discards the cached token and fetches a fresh one,
// invoked once after a 401 before the caller's request is retried.
func (t *tokenSource) ForceRefresh(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refreshLocked(ctx)
}

func (t *tokenSource) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {t.clientID},
		"client_secret": {t.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("controlplane: token refresh failed with status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}

	t.token = tr.AccessToken
	lifetime := time.Duration(tr.ExpiresIn) * time.Second
	t.expiresAt = time.Now().Add(lifetime * 2 / 3)
	return t.token, nil
}

// TokenEndpoint builds the realm token endpoint URL from the server
// domain, stack, and tenant the way spec.md §6 describes:
// https://{stack}.{SERVER_DOMAIN}/sso/realms/{tenant}/protocol/openid-connect/token
func TokenEndpoint(stack, serverDomain, tenant string) string {
	return fmt.Sprintf("https://%s.%s/sso/realms/%s/protocol/openid-connect/token", stack, serverDomain, tenant)
}

// BaseURL builds the control-plane API base URL the way spec.md §6
// describes: https://{stack}.{SERVER_DOMAIN}/v1/PII detector/
func BaseURL(stack, serverDomain string) string {
	return fmt.Sprintf("https://%s.%s/v1/PII detector", stack, serverDomain)
}
