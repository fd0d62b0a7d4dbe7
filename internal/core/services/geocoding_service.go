package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/platform/config"
)

const (
	// addressUnknownPlaceholder is stored when the provider answers but has
	// no address for the coordinates. Cached like a normal answer.
	addressUnknownPlaceholder = "Address not identified"

	// addressUnavailablePlaceholder is returned when the provider is
	// unreachable or times out. Never cached, so a later visit retries.
	addressUnavailablePlaceholder = "Address lookup unavailable"
)

type nominatimGeocoder struct {
	BaseService
	client    *http.Client
	baseURL   string
	userAgent string
	cache     *expirable.LRU[string, string]
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates the reverse-geocoding gateway backed by a
// Nominatim-compatible provider with a TTL'd in-memory cache.
func NewNominatimGeocoder(cfg *config.Config) portssvc.GeocoderSvc {
	return &nominatimGeocoder{
		client:    &http.Client{Timeout: cfg.GeocoderTimeout},
		baseURL:   strings.TrimRight(cfg.GeocoderBaseURL, "/"),
		userAgent: cfg.GeocoderUserAgent,
		cache:     expirable.NewLRU[string, string](cfg.GeocoderCacheSize, nil, cfg.GeocoderCacheTTL),
	}
}

var _ portssvc.GeocoderSvc = (*nominatimGeocoder)(nil)

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	// ~1m precision; repeated check-ins from the same spot share an entry.
	key := fmt.Sprintf("%.5f,%.5f", lat, lon)
	if address, ok := g.cache.Get(key); ok {
		return address
	}

	address, err := g.lookup(ctx, lat, lon)
	if err != nil {
		g.LogWarn(ctx, "Reverse geocoding failed", slog.String("coords", key), slog.String("error", err.Error()))
		return addressUnavailablePlaceholder
	}

	g.cache.Add(key, address)
	return address
}

func (g *nominatimGeocoder) lookup(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling geocode provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode provider returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding geocode response: %w", err)
	}

	if strings.TrimSpace(body.DisplayName) == "" {
		return addressUnknownPlaceholder, nil
	}
	return body.DisplayName, nil
}
