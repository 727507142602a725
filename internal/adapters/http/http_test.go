package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/mocks"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/config"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	engine   *gin.Engine
	geocoder *mocks.MockGeocoder
	gateway  *mocks.MockAstrologyGateway
}

func newFixture(t *testing.T, auth config.AuthConfig) *fixture {
	t.Helper()

	logger := discardLogger()
	cat := catalog.Default()
	geocoder := mocks.NewMockGeocoder(t)
	gateway := mocks.NewMockAstrologyGateway(t)

	catalogService := app.NewCatalogService(cat, logger)
	rashiService := app.NewRashiService(app.RashiServiceConfig{
		Geocoder: geocoder,
		Gateway:  gateway,
		Catalog:  cat,
		Logger:   logger,
	})

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:          logger,
		AuthConfig:      &auth,
		AppConfig:       &config.AppConfig{Name: "rashi-tree-guide-test", Environment: "test", Version: "test"},
		HealthHandler:   handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{Version: "test"}),
		RashiHandler:    handlers.NewRashiHandler(catalogService),
		ComputeHandler:  handlers.NewComputeHandler(rashiService),
		OperatorHandler: handlers.NewOperatorHandler(catalogService),
		Timeout:         5 * time.Second,
	})

	return &fixture{engine: engine, geocoder: geocoder, gateway: gateway}
}

func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())

	return out
}

func moonReading(sign, degree float64) *domain.PlanetsReading {
	return &domain.PlanetsReading{Shape: domain.ShapePreferred, Sign: sign, FullDegree: degree}
}

func TestRouter_ListRashis(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	w := f.do(http.MethodGet, "/api/v1/rashis", "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[dto.RashiListResponse](t, w)
	require.Len(t, list.Rashis, 12)
	assert.Equal(t, 12, list.Count)
	assert.Equal(t, "MESHA", list.Rashis[0].Key)
	assert.Equal(t, 1, list.Rashis[0].SignNumber)
	assert.Equal(t, "MEENA", list.Rashis[11].Key)
}

func TestRouter_GetRashi(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	w := f.do(http.MethodGet, "/api/v1/rashis/SIMHA", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Leo", decode[dto.RashiResponse](t, w).EnglishName)

	w = f.do(http.MethodGet, "/api/v1/rashis/PLUTO", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decode[dto.ErrorResponse](t, w).Error.Code)
}

func TestRouter_TreesByRashi(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	w := f.do(http.MethodGet, "/api/v1/rashis/KANYA/trees", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.TreesByRashiResponse](t, w)
	assert.Equal(t, "KANYA", resp.RashiKey)
	assert.Equal(t, "Kanya (Virgo)", resp.RashiLabel)
	require.Len(t, resp.Trees, 5)
	assert.Equal(t, "neem", resp.Trees[0].ID)
	assert.True(t, resp.Trees[0].IsPrimary)
	assert.False(t, resp.Trees[1].IsPrimary)

	w = f.do(http.MethodGet, "/api/v1/rashis/NONEXISTENT/trees", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rashi_key":"NONEXISTENT","rashi_label":"NONEXISTENT","trees":[]}`, w.Body.String())
}

func TestRouter_GetTree(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	w := f.do(http.MethodGet, "/api/v1/trees/ashoka", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Saraca asoca", decode[dto.TreeResponse](t, w).ScientificName)

	w = f.do(http.MethodGet, "/api/v1/trees/baobab", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Compute(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	f.geocoder.EXPECT().Geocode(mock.Anything, "Ahmedabad, India").
		Return(&domain.GeoPoint{Latitude: 23.0225, Longitude: 72.5714, DisplayName: "Ahmedabad, Gujarat, India"}, nil)
	f.gateway.EXPECT().Planets(mock.Anything, mock.Anything).Return(moonReading(4, 105.25), nil)

	w := f.do(http.MethodPost, "/api/v1/rashi/compute", `{"date_of_birth":"1990-07-15","place":"Ahmedabad, India"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.ComputeResponse](t, w)
	assert.Equal(t, "KARKA", resp.RashiKey)
	assert.Equal(t, "Karka (Cancer)", resp.RashiLabel)
	assert.Equal(t, "Karka", resp.RashiVedic)
	assert.InDelta(t, 105.25, resp.SiderealLongitude, 0)
	assert.Equal(t, 4, resp.MoonSignNumber)
	assert.InDelta(t, 5.5, resp.Location.Timezone, 0)
	assert.Equal(t, "Ahmedabad, Gujarat, India", resp.Location.DisplayName)
	assert.Equal(t, "approximate", resp.Confidence)
	assert.NotEmpty(t, resp.ConfidenceNote)
	require.NotEmpty(t, resp.Trees)
	assert.Equal(t, "kadamba", resp.Trees[0].ID)
}

func TestRouter_ComputeForm(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	f.gateway.EXPECT().Planets(mock.Anything, mock.MatchedBy(func(r domain.PlanetsRequest) bool {
		return r.Moment.Hour == 13 && r.Moment.Minute == 5 && r.Longitude < 0
	})).Return(moonReading(12, 350), nil)

	body := `{"day":"15","month":"07","year":"1990","hour":"1","minute":"05","meridiem":"PM",
		"lat_deg":"23","lat_min":"1","lat_sec":"21","lat_dir":"N",
		"lon_deg":"72","lon_min":"34","lon_sec":"17","lon_dir":"W","timezone":"5.5"}`

	w := f.do(http.MethodPost, "/api/v1/rashi/compute/form", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.ComputeResponse](t, w)
	assert.Equal(t, "MEENA", resp.RashiKey)
	assert.Equal(t, "exact", resp.Confidence)
}

func TestRouter_ComputeErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(*fixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid json",
			path:       "/api/v1/rashi/compute",
			body:       `{"date_of_birth":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:       "missing date",
			path:       "/api/v1/rashi/compute",
			body:       `{"place":"Pune"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "missing location",
			path:       "/api/v1/rashi/compute",
			body:       `{"date_of_birth":"1990-07-15"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeMissingLocation,
		},
		{
			name:       "latitude out of range",
			path:       "/api/v1/rashi/compute",
			body:       `{"date_of_birth":"1990-07-15","latitude":123,"longitude":10}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name: "place not found",
			path: "/api/v1/rashi/compute",
			body: `{"date_of_birth":"1990-07-15","place":"Atlantis"}`,
			setup: func(f *fixture) {
				f.geocoder.EXPECT().Geocode(mock.Anything, "Atlantis").Return(nil, domain.ErrPlaceNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodePlaceNotFound,
		},
		{
			name: "gateway unavailable",
			path: "/api/v1/rashi/compute",
			body: `{"date_of_birth":"1990-07-15","latitude":23,"longitude":72}`,
			setup: func(f *fixture) {
				f.gateway.EXPECT().Planets(mock.Anything, mock.Anything).
					Return(nil, domain.NewGatewayStatusError("astrology", http.StatusTooManyRequests))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeGatewayUnavailable,
		},
		{
			name: "moon sign not found",
			path: "/api/v1/rashi/compute",
			body: `{"date_of_birth":"1990-07-15","latitude":23,"longitude":72}`,
			setup: func(f *fixture) {
				f.gateway.EXPECT().Planets(mock.Anything, mock.Anything).Return(&domain.PlanetsReading{}, nil)
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   dto.ErrorCodeMoonSignNotFound,
		},
		{
			name: "unknown sign",
			path: "/api/v1/rashi/compute",
			body: `{"date_of_birth":"1990-07-15","latitude":23,"longitude":72}`,
			setup: func(f *fixture) {
				f.gateway.EXPECT().Planets(mock.Anything, mock.Anything).Return(moonReading(3.5, 80), nil)
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   dto.ErrorCodeUnknownSign,
		},
		{
			name: "missing api key",
			path: "/api/v1/rashi/compute",
			body: `{"date_of_birth":"1990-07-15","latitude":23,"longitude":72}`,
			setup: func(f *fixture) {
				f.gateway.EXPECT().Planets(mock.Anything, mock.Anything).
					Return(nil, domain.NewMisconfiguredError("astrology", "api key"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeMisconfigured,
		},
		{
			name:       "malformed coordinate",
			path:       "/api/v1/rashi/compute/form",
			body:       `{"day":"15","month":"07","year":"1990","lat_deg":"23","lat_dir":"Q","lon_deg":"72"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeMalformedCoordinate,
		},
		{
			name:       "form hour out of range",
			path:       "/api/v1/rashi/compute/form",
			body:       `{"day":"15","month":"07","year":"1990","hour":"13","minute":"00","place":"Pune"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "form month not two digits",
			path:       "/api/v1/rashi/compute/form",
			body:       `{"day":"15","month":"7","year":"1990","place":"Pune"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.AuthConfig{})
			if tt.setup != nil {
				tt.setup(f)
			}

			w := f.do(http.MethodPost, tt.path, tt.body, "X-Request-ID", "req-"+tt.name)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
			assert.Equal(t, "req-"+tt.name, resp.TraceID)
		})
	}
}

func TestRouter_OperatorCatalog(t *testing.T) {
	t.Run("auth disabled", func(t *testing.T) {
		f := newFixture(t, config.AuthConfig{})

		w := f.do(http.MethodGet, "/api/v1/operator/catalog", "")
		require.Equal(t, http.StatusOK, w.Code)

		report := decode[dto.CatalogReportResponse](t, w)
		assert.True(t, report.Healthy)
		assert.Equal(t, 12, report.Rashis)
		assert.Empty(t, report.Problems)
		assert.Equal(t, 5, report.TreesByRashi["KANYA"])
	})

	t.Run("auth enabled", func(t *testing.T) {
		f := newFixture(t, config.AuthConfig{Enabled: true, OperatorRole: "operator"})

		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/operator/catalog", "").Code)
		assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/operator/catalog", "",
			"X-User-ID", "kiosk-3", "X-User-Roles", "kiosk").Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/operator/catalog", "",
			"X-User-ID", "ops", "X-User-Roles", "operator").Code)

		// Browse routes stay public.
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/rashis", "").Code)
	})
}

func TestRouter_InternalEndpoints(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/-/live", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/-/ready", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/-/build", "").Code)

	f.do(http.MethodGet, "/api/v1/rashis", "")

	w := f.do(http.MethodGet, "/-/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rashi_http_requests_total")
}

func TestRouter_NoRoute(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	w := f.do(http.MethodGet, "/api/v2/rashis", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decode[dto.ErrorResponse](t, w).Error.Code)
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	f := newFixture(t, config.AuthConfig{})

	w := f.do(http.MethodGet, "/api/v1/rashis", "", "X-Request-ID", "abc", "X-Correlation-ID", "session-1")
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "session-1", w.Header().Get("X-Correlation-ID"))
}

func TestNewDefaultRouterConfig(t *testing.T) {
	cfg := &config.Config{
		App:    config.AppConfig{Name: "rashi-tree-guide"},
		Server: config.ServerConfig{RequestTimeout: 7 * time.Second},
		Auth:   config.AuthConfig{Enabled: true, OperatorRole: "operator"},
	}

	rc := NewDefaultRouterConfig(discardLogger(), cfg)
	assert.Equal(t, 7*time.Second, rc.Timeout)
	assert.Equal(t, "operator", rc.AuthConfig.OperatorRole)
	assert.Equal(t, "rashi-tree-guide", rc.AppConfig.Name)

	cfg.Server.RequestTimeout = 0
	assert.Equal(t, DefaultRequestTimeout, NewDefaultRouterConfig(discardLogger(), cfg).Timeout)
}

func testServerConfig(maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: maxBody,
	}
}

func TestServer_New(t *testing.T) {
	cfg := testServerConfig(1 << 10)
	srv := New(cfg, discardLogger())

	require.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}

func TestServer_StartShutdown(t *testing.T) {
	srv := New(testServerConfig(1<<10), discardLogger())
	errCh := srv.Start()

	time.Sleep(50 * time.Millisecond)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case _, ok := <-errCh:
		assert.False(t, ok, "error channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for server to shutdown")
	}
}

func TestServer_MaxBodySize(t *testing.T) {
	srv := New(testServerConfig(16), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			dto.HandleBindError(c, fmt.Errorf("%w: %w", dto.ErrBinding, err))
			return
		}

		c.String(http.StatusOK, string(body))
	})

	tests := []struct {
		name       string
		body       io.Reader
		wantStatus int
		wantCode   string
	}{
		{name: "within limit", body: strings.NewReader("tiny"), wantStatus: http.StatusOK},
		{name: "declared length over limit", body: bytes.NewReader(make([]byte, 64)), wantStatus: http.StatusRequestEntityTooLarge, wantCode: dto.ErrorCodePayloadTooLarge},
		{name: "chunked body over limit", body: struct{ io.Reader }{bytes.NewReader(make([]byte, 64))}, wantStatus: http.StatusRequestEntityTooLarge, wantCode: dto.ErrorCodePayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", tt.body))

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				resp := decode[dto.ErrorResponse](t, w)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				assert.Contains(t, resp.Error.Message, "16 bytes")
			}
		})
	}
}

func TestServer_ComputeBodyLimit(t *testing.T) {
	srv := New(testServerConfig(64), discardLogger())
	SetupRouter(srv.Engine(), RouterConfig{
		Logger:         discardLogger(),
		AuthConfig:     &config.AuthConfig{},
		AppConfig:      &config.AppConfig{Name: "rashi-tree-guide-test"},
		ComputeHandler: handlers.NewComputeHandler(app.NewRashiService(app.RashiServiceConfig{
			Geocoder: mocks.NewMockGeocoder(t),
			Gateway:  mocks.NewMockAstrologyGateway(t),
			Catalog:  catalog.Default(),
			Logger:   discardLogger(),
		})),
		Timeout:        time.Second,
	})

	body := `{"date_of_birth":"1990-01-01","place":"` + strings.Repeat("x", 100) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rashi/compute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, dto.ErrorCodePayloadTooLarge, decode[dto.ErrorResponse](t, w).Error.Code)
}
