package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shipcatalog/internal/biz"
	"shipcatalog/internal/conf"
	"shipcatalog/internal/data"
	"shipcatalog/internal/ratelimit"
	"shipcatalog/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string) bool { return false }

func newTestServer(t *testing.T, token string, limiter ratelimit.Limiter) *khttp.Server {
	t.Helper()
	logger := log.NewStdLogger(io.Discard)
	d, cleanup, err := data.NewData(&conf.Data{Driver: data.DriverMemory}, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	svc := service.NewShipService(biz.NewShipUseCase(data.NewShipRepo(d, logger), logger), logger)
	srv := NewHTTPServer(&conf.Server{Http: &conf.Server_HTTP{Addr: "127.0.0.1:0"}}, &conf.Auth{Token: token}, limiter, svc, logger)
	// binds the listener so the transport carries an endpoint
	_, err = srv.Endpoint()
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func millis(y int) int64 {
	return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func shipJSON(name, planet string, year int, speed float64, crew int, used bool) string {
	b, _ := json.Marshal(map[string]any{
		"name":     name,
		"planet":   planet,
		"shipType": "MILITARY",
		"prodDate": millis(year),
		"isUsed":   used,
		"speed":    speed,
		"crewSize": crew,
	})
	return string(b)
}

func decodeShip(t *testing.T, rec *httptest.ResponseRecorder) service.ShipReply {
	t.Helper()
	var s service.ShipReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s), rec.Body.String())
	return s
}

func decodeShips(t *testing.T, rec *httptest.ResponseRecorder) []service.ShipReply {
	t.Helper()
	var s []service.ShipReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s), rec.Body.String())
	return s
}

func TestShipLifecycle(t *testing.T) {
	srv := newTestServer(t, "", ratelimit.Unlimited{})

	rec := do(t, srv, http.MethodPost, "/rest/ships", shipJSON("Orion", "Mars", 3019, 0.5, 10, false))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeShip(t, rec)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 40.0, created.Rating)
	assert.Equal(t, millis(3019), created.ProdDate)

	rec = do(t, srv, http.MethodGet, "/rest/ships/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeShip(t, rec))

	rec = do(t, srv, http.MethodPost, "/rest/ships/1", `{"speed":0.8,"rating":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeShip(t, rec)
	assert.Equal(t, 0.8, updated.Speed)
	assert.Equal(t, 64.0, updated.Rating)
	assert.Equal(t, created.Name, updated.Name)

	rec = do(t, srv, http.MethodPost, "/rest/ships/1", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeShip(t, rec))

	rec = do(t, srv, http.MethodDelete, "/rest/ships/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/rest/ships/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/rest/ships/1", "").Code)
}

func TestShipValidationErrors(t *testing.T) {
	srv := newTestServer(t, "", ratelimit.Unlimited{})

	tests := []struct {
		name   string
		method string
		target string
		body   string
		code   int
	}{
		{name: "crew size 0", method: http.MethodPost, target: "/rest/ships", body: shipJSON("A", "B", 3000, 0.5, 0, false), code: http.StatusBadRequest},
		{name: "year 2799", method: http.MethodPost, target: "/rest/ships", body: shipJSON("A", "B", 2799, 0.5, 1, false), code: http.StatusBadRequest},
		{name: "year 3020", method: http.MethodPost, target: "/rest/ships", body: shipJSON("A", "B", 3020, 0.5, 1, false), code: http.StatusBadRequest},
		{name: "empty body", method: http.MethodPost, target: "/rest/ships", body: "", code: http.StatusBadRequest},
		{name: "malformed body", method: http.MethodPost, target: "/rest/ships", body: "{", code: http.StatusBadRequest},
		{name: "zero id", method: http.MethodGet, target: "/rest/ships/0", code: http.StatusBadRequest},
		{name: "negative id", method: http.MethodGet, target: "/rest/ships/-1", code: http.StatusBadRequest},
		{name: "non-numeric id", method: http.MethodGet, target: "/rest/ships/abc", code: http.StatusBadRequest},
		{name: "absent id", method: http.MethodGet, target: "/rest/ships/77", code: http.StatusNotFound},
		{name: "update absent id", method: http.MethodPost, target: "/rest/ships/77", body: `{"name":"x"}`, code: http.StatusNotFound},
		{name: "delete zero id", method: http.MethodDelete, target: "/rest/ships/0", code: http.StatusBadRequest},
		{name: "unknown order", method: http.MethodGet, target: "/rest/ships?order=NAME", code: http.StatusBadRequest},
		{name: "unknown ship type", method: http.MethodGet, target: "/rest/ships/count?shipType=YACHT", code: http.StatusBadRequest},
		{name: "negative page", method: http.MethodGet, target: "/rest/ships?pageNumber=-1", code: http.StatusBadRequest},
		{name: "malformed bound", method: http.MethodGet, target: "/rest/ships?minSpeed=fast", code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestListAndCount(t *testing.T) {
	srv := newTestServer(t, "", ratelimit.Unlimited{})
	seed := []string{
		shipJSON("Alpha", "Mars", 3010, 0.9, 10, false),
		shipJSON("Beta", "Earth", 2900, 0.2, 20, true),
		shipJSON("Gamma", "Mars", 2950, 0.5, 30, false),
		shipJSON("Delta", "Mars", 3000, 0.3, 40, true),
		shipJSON("Epsilon", "Venus", 2850, 0.7, 50, false),
	}
	for _, body := range seed {
		require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/rest/ships", body).Code)
	}

	ships := decodeShips(t, do(t, srv, http.MethodGet, "/rest/ships", ""))
	require.Len(t, ships, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{ships[0].ID, ships[1].ID, ships[2].ID})

	ships = decodeShips(t, do(t, srv, http.MethodGet, "/rest/ships?planet=Mars&order=SPEED&pageSize=2", ""))
	require.Len(t, ships, 2)
	assert.Equal(t, "Delta", ships[0].Name)
	assert.Equal(t, "Gamma", ships[1].Name)

	ships = decodeShips(t, do(t, srv, http.MethodGet, "/rest/ships?planet=Mars&order=SPEED&pageSize=2&pageNumber=1", ""))
	require.Len(t, ships, 1)
	assert.Equal(t, "Alpha", ships[0].Name)

	ships = decodeShips(t, do(t, srv, http.MethodGet, "/rest/ships?pageNumber=10", ""))
	assert.Empty(t, ships)

	var n int64
	rec := do(t, srv, http.MethodGet, "/rest/ships/count?planet=Mars&isUsed=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, int64(1), n)

	rec = do(t, srv, http.MethodGet, "/rest/ships/count?after="+itoa(millis(2950))+"&maxCrewSize=40", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, int64(3), n)

	rec = do(t, srv, http.MethodGet, "/rest/ships/count", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, int64(5), n)
}

func TestAuthMiddleware(t *testing.T) {
	srv := newTestServer(t, "secret", ratelimit.Unlimited{})
	body := shipJSON("Orion", "Mars", 3000, 0.5, 10, false)

	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodPost, "/rest/ships", body).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodPost, "/rest/ships", body, "Authorization", "Bearer wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodPost, "/rest/ships", body, "Authorization", "secret").Code)
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/rest/ships", body, "Authorization", "Bearer secret").Code)

	// reads stay open
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/rest/ships/1", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodDelete, "/rest/ships/1", "").Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	srv := newTestServer(t, "", denyLimiter{})

	rec := do(t, srv, http.MethodPost, "/rest/ships", shipJSON("Orion", "Mars", 3000, 0.5, 10, false))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/rest/ships", "").Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	srv := newTestServer(t, "", ratelimit.Unlimited{})

	rec := do(t, srv, http.MethodGet, "/rest/ships", "", "X-Request-Id", "req-123")
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))

	rec = do(t, srv, http.MethodGet, "/rest/ships/count", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDValuer(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestIDKey{}, "abc")
	assert.Equal(t, "abc", RequestID()(ctx))
	assert.Equal(t, "", RequestID()(context.Background()))
}

func itoa(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
