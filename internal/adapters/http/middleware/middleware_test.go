package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"generates UUID when absent", ""},
		{"passes through existing header", "kiosk-req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}

			w := serve(router, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, w.Header().Get(HeaderRequestID), fromGin)
			assert.Equal(t, fromGin, fromCtx)

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, fromGin)
			} else {
				_, err := uuid.Parse(fromGin)
				assert.NoError(t, err)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	var fromGin, fromCtx string

	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/test", func(c *gin.Context) {
		fromGin = GetCorrelationID(c)
		fromCtx = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderCorrelationID, "session-42")

	w := serve(router, req)

	assert.Equal(t, "session-42", w.Header().Get(HeaderCorrelationID))
	assert.Equal(t, "session-42", fromGin)
	assert.Equal(t, "session-42", fromCtx)
}

func TestIDsBeforeMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
}

func TestExtractClaims(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.AuthConfig
		headers map[string]string
		want    *Claims
	}{
		{
			name:    "default headers",
			headers: map[string]string{"X-User-ID": "kiosk-7", "X-User-Roles": "operator, viewer,"},
			want:    &Claims{Subject: "kiosk-7", Roles: []string{"operator", "viewer"}},
		},
		{
			name:    "configured headers",
			cfg:     &config.AuthConfig{SubjectHeader: "X-Sub", RolesHeader: "X-Roles"},
			headers: map[string]string{"X-Sub": "ops", "X-Roles": "operator", "X-User-ID": "ignored"},
			want:    &Claims{Subject: "ops", Roles: []string{"operator"}},
		},
		{
			name: "no headers",
			want: &Claims{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, ExtractClaims(c, tt.cfg))
		})
	}
}

func TestRequireAuthAndRole(t *testing.T) {
	cfg := &config.AuthConfig{Enabled: true, OperatorRole: "operator"}

	router := gin.New()
	router.GET("/op", append(Operator(cfg), func(c *gin.Context) {
		claims := GetClaims(c)
		c.String(http.StatusOK, claims.Subject)
	})...)

	tests := []struct {
		name     string
		subject  string
		roles    string
		wantCode int
		wantErr  string
	}{
		{"anonymous", "", "operator", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"missing role", "kiosk-1", "viewer", http.StatusForbidden, dto.ErrorCodeForbidden},
		{"operator", "ops-1", "viewer,operator", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/op", nil)
			if tt.subject != "" {
				req.Header.Set("X-User-ID", tt.subject)
			}

			req.Header.Set("X-User-Roles", tt.roles)

			w := serve(router, req)
			require.Equal(t, tt.wantCode, w.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, w).Error.Code)
			} else {
				assert.Equal(t, tt.subject, w.Body.String())
			}
		})
	}
}

func TestOperator_AuthDisabled(t *testing.T) {
	assert.Nil(t, Operator(nil))
	assert.Nil(t, Operator(&config.AuthConfig{Enabled: false, OperatorRole: "operator"}))
}

func TestRequireRole_ExtractsWithoutRequireAuth(t *testing.T) {
	router := gin.New()
	router.GET("/r", RequireRole(nil, "operator"), func(c *gin.Context) {
		assert.NotNil(t, GetClaims(c))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/r", nil)
	req.Header.Set("X-User-Roles", "operator")

	assert.Equal(t, http.StatusNoContent, serve(router, req).Code)
}

func TestRequireRole_ForbiddenNamesOperation(t *testing.T) {
	router := gin.New()
	router.GET("/api/v1/operator/catalog", RequireRole(nil, "operator"), func(c *gin.Context) {
		t.Fatal("handler must not run without the role")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/operator/catalog", nil)
	req.Header.Set("X-User-ID", "kiosk-7")
	req.Header.Set("X-User-Roles", "kiosk")

	w := serve(router, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
	assert.Equal(t, `operation "GET /api/v1/operator/catalog" forbidden: role operator required`, resp.Error.Message)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := gin.New()
	router.Use(Logging(logger, "/skip"))
	router.GET("/rashis/:key", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/skip", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/skip", nil))
	assert.Empty(t, buf.String())

	serve(router, httptest.NewRequest(http.MethodGet, "/rashis/PLUTO?x=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"request started"`)
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"route":"/rashis/:key"`)
	assert.NotContains(t, out, "x=1")
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/panic", func(*gin.Context) { panic("catalog corrupted") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-ID", "req-9")

	w := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.Equal(t, "req-9", resp.TraceID)
	assert.NotContains(t, w.Body.String(), "catalog corrupted")
	assert.Contains(t, buf.String(), "catalog corrupted")
}

func TestRecovery_AfterWrite(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(nil))
	router.GET("/late", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		panic("late")
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/late", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestTimeout(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(20*time.Millisecond, "/slow-ok"))

	router.GET("/deadline", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	router.GET("/slow-ok", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/deadline", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/slow-ok", nil)).Code)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, dto.ErrorCodeTimeout, decodeError(t, w).Error.Code)
}

func TestTimeout_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(0))
	router.GET("/x", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
}

func TestParseCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseCommaSeparated(" a ,, b ,"))
	assert.Empty(t, parseCommaSeparated(" , "))
}
