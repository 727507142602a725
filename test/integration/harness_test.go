//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/cache"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients/acl"
	apihttp "github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/config"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

const stubAPIKey = "integration-key"

// stubPlace is one canned geocoder answer.
type stubPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// upstreams fakes Nominatim and the astrology API.
type upstreams struct {
	nominatim *httptest.Server
	astrology *httptest.Server

	mu     sync.Mutex
	places map[string]stubPlace
	// planets is the raw astrology body; status overrides 200 when set.
	planets string
	status  int

	geocodeCalls atomic.Int32
	planetsCalls atomic.Int32
	lastPayload  atomic.Value
}

func newUpstreams() *upstreams {
	u := &upstreams{
		places: map[string]stubPlace{
			"ahmedabad, india": {Lat: "23.0225", Lon: "72.5714", DisplayName: "Ahmedabad, Gujarat, India"},
			"london":           {Lat: "51.5072", Lon: "-0.1276", DisplayName: "London, Greater London, England"},
		},
	}
	u.setMoonSign(4, 105.25)

	u.nominatim = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.geocodeCalls.Add(1)

		u.mu.Lock()
		place, ok := u.places[strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))]
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		if !ok {
			_, _ = w.Write([]byte(`[]`))
			return
		}

		_ = json.NewEncoder(w).Encode([]stubPlace{place})
	}))

	u.astrology = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.planetsCalls.Add(1)

		body, _ := io.ReadAll(r.Body)
		u.lastPayload.Store(string(body))

		if r.Header.Get("x-api-key") != stubAPIKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		u.mu.Lock()
		status, planets := u.status, u.planets
		u.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(planets))
	}))

	return u
}

// setMoonSign makes the astrology stub answer with the preferred layout.
func (u *upstreams) setMoonSign(sign int, fullDegree float64) {
	body, _ := json.Marshal(map[string]any{
		"statusCode": 200,
		"output": []any{
			map[string]any{"0": map[string]any{"name": "Ascendant"}},
			map[string]any{"Moon": map[string]any{"current_sign": sign, "fullDegree": fullDegree}},
		},
	})

	u.mu.Lock()
	u.planets, u.status = string(body), 0
	u.mu.Unlock()
}

func (u *upstreams) setPlanetsBody(body string) {
	u.mu.Lock()
	u.planets, u.status = body, 0
	u.mu.Unlock()
}

func (u *upstreams) setStatus(status int) {
	u.mu.Lock()
	u.status = status
	u.mu.Unlock()
}

func (u *upstreams) close() {
	u.nominatim.Close()
	u.astrology.Close()
}

// guideOptions tweaks the in-process service.
type guideOptions struct {
	apiKey    string
	auth      config.AuthConfig
	cacheSize int
}

// guide is the whole service wired the way cmd/service wires it, with the
// downstream base URLs pointed at the stubs.
type guide struct {
	server    *httptest.Server
	upstreams *upstreams
}

func newGuide(opts guideOptions) (*guide, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	u := newUpstreams()

	clientFor := func(name, baseURL string) (*clients.Client, error) {
		return clients.New(&clients.Config{
			BaseURL:     baseURL,
			ServiceName: name,
			Timeout:     2 * time.Second,
			Retry:       config.RetryConfig{MaxAttempts: 1},
			Circuit:     config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second, HalfOpenLimit: 1},
			Logger:      logger,
		})
	}

	geoClient, err := clientFor(acl.GeocoderService, u.nominatim.URL)
	if err != nil {
		return nil, err
	}

	astroClient, err := clientFor(acl.AstrologyService, u.astrology.URL)
	if err != nil {
		return nil, err
	}

	geocoder, err := cache.NewGeocoder(acl.NewNominatim(acl.NominatimConfig{
		Client:    geoClient,
		UserAgent: "rashi-tree-guide-integration",
		Logger:    logger,
	}), opts.cacheSize)
	if err != nil {
		return nil, err
	}

	astrology := acl.NewAstrology(acl.AstrologyConfig{Client: astroClient, APIKey: opts.apiKey, Logger: logger})
	cat := catalog.Default()

	registry := ports.NewHealthRegistry()
	_ = registry.Register(geocoder.(ports.HealthChecker))
	_ = registry.Register(astrology)

	catalogService := app.NewCatalogService(cat, logger)
	rashiService := app.NewRashiService(app.RashiServiceConfig{
		Geocoder: geocoder,
		Gateway:  astrology,
		Catalog:  cat,
		Logger:   logger,
	})

	engine := gin.New()
	apihttp.SetupRouter(engine, apihttp.RouterConfig{
		Logger:          logger,
		AuthConfig:      &opts.auth,
		AppConfig:       &config.AppConfig{Name: "rashi-tree-guide", Version: "integration", Environment: "test"},
		HealthHandler:   handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "now").WithCatalog(len(cat.Rashis()), len(cat.Trees()))),
		RashiHandler:    handlers.NewRashiHandler(catalogService),
		ComputeHandler:  handlers.NewComputeHandler(rashiService),
		OperatorHandler: handlers.NewOperatorHandler(catalogService),
		Timeout:         5 * time.Second,
	})

	return &guide{server: httptest.NewServer(engine), upstreams: u}, nil
}

func (g *guide) close() {
	g.server.Close()
	g.upstreams.close()
}
