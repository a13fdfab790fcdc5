package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dkadris/storefront/internal/models"
)

// Shared HTTP client for worker calls.
var workerHTTPClient = &http.Client{Timeout: 15 * time.Second}

const healthCacheTTL = 30 * time.Second

// APIError is a failure reported by the worker. Message is extracted from a
// structured error body when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("worker returned %d: %s", e.Status, e.Message)
}

// WorkerGateway talks to the remote worker service that is authoritative for
// catalog, gallery, settings, affiliate and payout data when reachable.
// A nil or unconfigured gateway means the server runs standalone.
type WorkerGateway struct {
	baseURL string
	apiKey  string

	mu           sync.Mutex
	activeUntil  time.Time
	activeCached bool
}

// NewWorkerGateway constructs a gateway for the given base URL. The API key is
// the server-to-server bearer credential for administrative worker endpoints.
func NewWorkerGateway(baseURL, apiKey string) *WorkerGateway {
	return &WorkerGateway{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
	}
}

// Configured reports whether a worker base URL is set at all.
func (g *WorkerGateway) Configured() bool {
	return g != nil && g.baseURL != ""
}

// IsActive probes the worker health endpoint. Any 2xx means connected;
// network failure means false, never an error. The result is cached briefly
// so request paths do not probe on every call.
func (g *WorkerGateway) IsActive() bool {
	if !g.Configured() {
		return false
	}

	g.mu.Lock()
	if time.Now().Before(g.activeUntil) {
		active := g.activeCached
		g.mu.Unlock()
		return active
	}
	g.mu.Unlock()

	active := false
	resp, err := workerHTTPClient.Get(g.baseURL + "/health")
	if err == nil {
		active = resp.StatusCode >= 200 && resp.StatusCode < 300
		resp.Body.Close()
	}

	g.mu.Lock()
	g.activeCached = active
	g.activeUntil = time.Now().Add(healthCacheTTL)
	g.mu.Unlock()
	return active
}

// AdminToken returns the server-side bearer credential for administrative
// worker endpoints.
func (g *WorkerGateway) AdminToken() string {
	return g.apiKey
}

// request performs one worker call. A non-2xx response becomes an *APIError
// with the message pulled from the JSON error body when available.
func (g *WorkerGateway) request(method, path string, query url.Values, body any, token string, out any) error {
	if !g.Configured() {
		return errors.New("worker gateway is not configured")
	}

	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := workerHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: extractErrorMessage(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func extractErrorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return "API request failed"
}

// CatalogPage is one page of catalog results.
type CatalogPage struct {
	Data    []models.Product `json:"data"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	HasMore bool             `json:"hasMore"`
}

// Catalogs fetches a catalog page. An admin bearer token makes the worker
// include unpublished drafts.
func (g *WorkerGateway) Catalogs(page, limit int, token string) (*CatalogPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result CatalogPage
	if err := g.request(http.MethodGet, "/catalogs", query, nil, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpsertCatalog creates or replaces a product on the worker.
func (g *WorkerGateway) UpsertCatalog(product models.Product, token string) (models.Product, error) {
	var saved models.Product
	if err := g.request(http.MethodPost, "/catalogs", nil, product, token, &saved); err != nil {
		return models.Product{}, err
	}
	return saved, nil
}

// DeleteCatalog removes a product on the worker.
func (g *WorkerGateway) DeleteCatalog(id, token string) error {
	return g.request(http.MethodDelete, "/catalogs/"+url.PathEscape(id), nil, nil, token, nil)
}

// GalleryPayload bundles gallery items with their layout configuration.
type GalleryPayload struct {
	Items  []models.GalleryItem `json:"items"`
	Config models.GalleryConfig `json:"config"`
}

// Gallery fetches the gallery items and configuration.
func (g *WorkerGateway) Gallery(token string) (*GalleryPayload, error) {
	var result GalleryPayload
	if err := g.request(http.MethodGet, "/gallery", nil, nil, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type gallerySaveRequest struct {
	Items  []models.GalleryItem  `json:"items,omitempty"`
	Config *models.GalleryConfig `json:"config,omitempty"`
}

// SaveGallery replaces the gallery items and/or configuration on the worker.
func (g *WorkerGateway) SaveGallery(items []models.GalleryItem, config *models.GalleryConfig, token string) error {
	return g.request(http.MethodPost, "/gallery", nil, gallerySaveRequest{Items: items, Config: config}, token, nil)
}

// Settings fetches the site configuration.
func (g *WorkerGateway) Settings() (models.SiteConfig, error) {
	var config models.SiteConfig
	if err := g.request(http.MethodGet, "/settings", nil, nil, "", &config); err != nil {
		return models.SiteConfig{}, err
	}
	return config, nil
}

// SaveSettings merge-updates the site configuration on the worker.
func (g *WorkerGateway) SaveSettings(config models.SiteConfig, token string) (models.SiteConfig, error) {
	var saved models.SiteConfig
	if err := g.request(http.MethodPost, "/settings", nil, config, token, &saved); err != nil {
		return models.SiteConfig{}, err
	}
	return saved, nil
}

type workerLoginResponse struct {
	Token string `json:"token"`
}

// AdminLogin exchanges the admin password for a worker bearer token.
func (g *WorkerGateway) AdminLogin(password string) (string, error) {
	var result workerLoginResponse
	err := g.request(http.MethodPost, "/admin/login", nil, map[string]string{"password": password}, "", &result)
	if err != nil {
		return "", err
	}
	return result.Token, nil
}

// Payouts lists all payout requests.
func (g *WorkerGateway) Payouts(token string) ([]models.PayoutRequest, error) {
	var payouts []models.PayoutRequest
	if err := g.request(http.MethodGet, "/admin/payouts", nil, nil, token, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

// UpdatePayoutStatus transitions a payout request.
func (g *WorkerGateway) UpdatePayoutStatus(id, status, token string) (models.PayoutRequest, error) {
	var updated models.PayoutRequest
	err := g.request(http.MethodPatch, "/admin/payouts/"+url.PathEscape(id), nil,
		map[string]string{"status": status}, token, &updated)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	return updated, nil
}

// AffiliateSignupPayload is the signup request forwarded to the worker.
type AffiliateSignupPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ReferrerCode   string `json:"referrerCode,omitempty"`
	PolicyAccepted bool   `json:"policyAccepted"`
}

// AffiliateSignup creates a partner account on the worker. The account starts
// unverified until the email-confirmation step completes.
func (g *WorkerGateway) AffiliateSignup(payload AffiliateSignupPayload) error {
	return g.request(http.MethodPost, "/affiliate/signup", nil, payload, "", nil)
}

// AffiliateSession is a successful worker login.
type AffiliateSession struct {
	Token string           `json:"token"`
	User  models.Affiliate `json:"user"`
}

// AffiliateLogin exchanges credentials for a worker session.
func (g *WorkerGateway) AffiliateLogin(email, password string) (*AffiliateSession, error) {
	var session AffiliateSession
	err := g.request(http.MethodPost, "/affiliate/login", nil,
		map[string]string{"email": email, "password": password}, "", &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AffiliateStats returns the profile and earnings of the session's affiliate.
func (g *WorkerGateway) AffiliateStats(token string) (models.Affiliate, error) {
	var affiliate models.Affiliate
	if err := g.request(http.MethodGet, "/affiliate/stats", nil, nil, token, &affiliate); err != nil {
		return models.Affiliate{}, err
	}
	return affiliate, nil
}

// VerifyEmail confirms an email-verification token.
func (g *WorkerGateway) VerifyEmail(token string) error {
	query := url.Values{}
	query.Set("token", token)
	return g.request(http.MethodGet, "/affiliate/verify", query, nil, "", nil)
}

// TrackOrder mirrors an order to the worker, best effort.
func (g *WorkerGateway) TrackOrder(order models.Order, token string) error {
	return g.request(http.MethodPost, "/orders/track", nil, order, token, nil)
}
