package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
)

// GeocoderService is the service name used in geocoder errors.
const GeocoderService = "geocoder"

// NominatimConfig configures the Nominatim geocoder.
type NominatimConfig struct {
	// Client must point at the Nominatim base URL.
	Client *clients.Client

	// UserAgent is mandatory under the Nominatim usage policy.
	UserAgent string

	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64

	Logger *slog.Logger
}

// Nominatim implements ports.Geocoder against an OpenStreetMap Nominatim
// search endpoint.
type Nominatim struct {
	client    *clients.Client
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewNominatim creates the geocoder. It panics without a client.
func NewNominatim(cfg NominatimConfig) *Nominatim {
	if cfg.Client == nil {
		panic("acl: Nominatim requires a Client")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Nominatim{
		client:    cfg.Client,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
		logger:    logger.With(slog.String("component", "acl.Nominatim")),
	}
}

// nominatimPlace is one search candidate. Coordinates arrive as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves place to its best candidate. No candidates yields
// domain.ErrPlaceNotFound.
func (n *Nominatim) Geocode(ctx context.Context, place string) (*domain.GeoPoint, error) {
	if err := ValidateRequired(place, "place"); err != nil {
		return nil, err
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return nil, MapClientError(GeocoderService, err)
	}

	n.logger.Log(ctx, logging.LevelTrace, "geocoding", slog.String("place", place))

	query := url.Values{"q": {place}, "format": {"json"}, "limit": {"1"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.searchURL(query), http.NoBody)
	if err != nil {
		return nil, MapClientError(GeocoderService, err)
	}

	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(ctx, req)
	if err != nil {
		return nil, MapClientError(GeocoderService, err)
	}

	places, err := DecodeResponse[[]nominatimPlace](GeocoderService, resp)
	if err != nil {
		return nil, err
	}

	points, err := TranslateSlice(*places, translatePlace)
	if err != nil {
		return nil, domain.NewGatewayError(GeocoderService, err.Error())
	}

	if len(points) == 0 {
		n.logger.DebugContext(ctx, "place not found", slog.String("place", place))

		return nil, domain.ErrPlaceNotFound
	}

	return points[0], nil
}

func (n *Nominatim) searchURL(query url.Values) string {
	return n.client.URL("/search") + "?" + query.Encode()
}

func translatePlace(p *nominatimPlace) (*domain.GeoPoint, error) {
	lat, err := ParseDegrees(p.Lat, 90)
	if err != nil {
		return nil, err
	}

	lon, err := ParseDegrees(p.Lon, 180)
	if err != nil {
		return nil, err
	}

	return &domain.GeoPoint{Latitude: lat, Longitude: lon, DisplayName: p.DisplayName}, nil
}

// Name implements ports.HealthChecker.
func (n *Nominatim) Name() string { return GeocoderService }

// Check reports the geocoder unready while its circuit is open. It does not
// call Nominatim, whose usage policy discourages synthetic traffic.
func (n *Nominatim) Check(context.Context) error {
	return breakerCheck(GeocoderService, n.client.Breaker())
}
