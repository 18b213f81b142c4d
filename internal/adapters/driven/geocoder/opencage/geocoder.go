// Package opencage provides a driven.Geocoder backed by the OpenCage
// forward geocoding API.
package opencage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// Ensure Geocoder implements the interface.
var _ driven.Geocoder = (*Geocoder)(nil)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultGeocoderBaseURL
	DefaultTimeout = 10 * time.Second

	geocodePath = "/geocode/v1/json"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 4 << 10
)

// Config holds configuration for the OpenCage geocoder.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL is the API base URL (default: https://api.opencagedata.com).
	BaseURL string

	// CountryCode restricts matches to one country, e.g. "gb". Optional.
	CountryCode string

	// RequestsPerSecond throttles requests. Zero means unthrottled.
	RequestsPerSecond float64

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// HTTPClient overrides the client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// ConfigFromSettings maps application settings onto a Config.
func ConfigFromSettings(s domain.GeocoderSettings) Config {
	return Config{
		APIKey:            s.APIKey,
		BaseURL:           s.BaseURL,
		CountryCode:       s.CountryCode,
		RequestsPerSecond: s.RequestsPerSecond,
		Timeout:           time.Duration(s.TimeoutSeconds) * time.Second,
	}
}

// Geocoder resolves postcodes through OpenCage.
type Geocoder struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	countryCode string
	limiter     *RateLimiter
}

// response is the subset of the OpenCage response format we read.
type response struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Formatted  string `json:"formatted"`
		Confidence int    `json:"confidence"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Rate *struct {
		Limit     int   `json:"limit"`
		Remaining int   `json:"remaining"`
		Reset     int64 `json:"reset"`
	} `json:"rate"`
}

// New creates an OpenCage geocoder.
func New(cfg Config) *Geocoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Geocoder{
		client:      client,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      strings.TrimSpace(cfg.APIKey),
		countryCode: strings.ToLower(strings.TrimSpace(cfg.CountryCode)),
		limiter:     NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// Geocode returns the best match for text.
func (g *Geocoder) Geocode(ctx context.Context, text string) (domain.Coordinate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Coordinate{}, domain.ErrPostcodeNotFound
	}
	if g.apiKey == "" {
		return domain.Coordinate{}, fmt.Errorf("%w: no API key configured", domain.ErrGeocoderUnavailable)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return domain.Coordinate{}, err
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.requestURL(text), http.NoBody)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Coordinate{}, ctxErr
		}
		return domain.Coordinate{}, fmt.Errorf("%w: %w", domain.ErrGeocoderUnavailable, redact(err, g.apiKey))
	}
	defer resp.Body.Close()
	logger.Debug("OpenCage %q: HTTP %d in %s", text, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, g.statusError(resp)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: decode response: %w", domain.ErrGeocoderUnavailable, err)
	}
	if body.Rate != nil {
		logger.Debug("OpenCage quota: %d/%d remaining", body.Rate.Remaining, body.Rate.Limit)
	}

	if len(body.Results) == 0 {
		return domain.Coordinate{}, domain.ErrPostcodeNotFound
	}

	best := body.Results[0]
	coord := domain.Coordinate{Latitude: best.Geometry.Lat, Longitude: best.Geometry.Lng}
	logger.Debug("OpenCage %q -> %s (%s, confidence %d)", text, coord, best.Formatted, best.Confidence)
	return coord, nil
}

func (g *Geocoder) requestURL(text string) string {
	q := url.Values{}
	q.Set("q", text)
	q.Set("key", g.apiKey)
	q.Set("limit", "1")
	q.Set("no_annotations", "1")
	if g.countryCode != "" {
		q.Set("countrycode", g.countryCode)
	}
	return g.baseURL + geocodePath + "?" + q.Encode()
}

// statusError maps a non-200 response onto a domain error.
func (g *Geocoder) statusError(resp *http.Response) error {
	var body response
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &body); err == nil && body.Status.Message != "" {
		msg = body.Status.Message
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		// OpenCage answers 400 for queries it cannot interpret.
		return fmt.Errorf("%w: %s", domain.ErrPostcodeNotFound, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrGeocoderUnavailable, resp.StatusCode, msg)
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		until := retryAfter(resp.Header.Get("Retry-After"), time.Now())
		if until.IsZero() && body.Rate != nil && body.Rate.Reset > 0 {
			until = time.Unix(body.Rate.Reset, 0)
		}
		g.limiter.Backoff(until)
		logger.Warn("OpenCage quota exceeded, backing off until %s", g.limiter.RetryAt().Format(time.RFC3339))
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrRateLimited, resp.StatusCode, msg)
	default:
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrGeocoderUnavailable, resp.StatusCode, msg)
	}
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
// Returns the zero time when the header is absent or malformed.
func retryAfter(header string, now time.Time) time.Time {
	header = strings.TrimSpace(header)
	if header == "" {
		return time.Time{}
	}
	if secs, err := strconv.Atoi(header); err == nil {
		if secs <= 0 {
			return time.Time{}
		}
		return now.Add(time.Duration(secs) * time.Second)
	}
	if t, err := http.ParseTime(header); err == nil {
		return t
	}
	return time.Time{}
}

// redact removes the API key from transport errors, which embed the URL.
func redact(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
