package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	repotest "github.com/yungbote/agroregistry-backend/internal/data/repos/testutil"
	types "github.com/yungbote/agroregistry-backend/internal/domain"
	httpH "github.com/yungbote/agroregistry-backend/internal/http/handlers"
	httpMW "github.com/yungbote/agroregistry-backend/internal/http/middleware"
	"github.com/yungbote/agroregistry-backend/internal/http/response"
	"github.com/yungbote/agroregistry-backend/internal/observability"
	"github.com/yungbote/agroregistry-backend/internal/services"
)

const testSecret = "test-secret"

type apiHarness struct {
	t      *testing.T
	engine *gin.Engine
	token  string
	actor  *types.User
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := repotest.DB(t)
	log := repotest.Logger(t)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	reg := services.NewRegistry(db, log, services.RegistryConfig{Metrics: metrics, HashCost: bcrypt.MinCost})
	engine := NewRouter(RouterConfig{
		Registry:       reg,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, testSecret),
		HealthHandler:  httpH.NewHealthHandler(db),
		Metrics:        metrics,
		Log:            log,
	})
	actor := repotest.SeedUser(t, db, "actor@example.com")
	return &apiHarness{t: t, engine: engine, token: signToken(t, testSecret, actor.ID), actor: actor}
}

func signToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: strconv.FormatUint(uint64(userID), 10)})
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func (h *apiHarness) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			h.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func (h *apiHarness) create(path string, body any) map[string]any {
	h.t.Helper()
	rec := h.do(nethttp.MethodPost, path, body, h.token)
	if rec.Code != nethttp.StatusCreated {
		h.t.Fatalf("POST %s: status=%d body=%s", path, rec.Code, rec.Body.String())
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		h.t.Fatalf("POST %s: decode: %v", path, err)
	}
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.APIError {
	t.Helper()
	var env response.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, rec.Body.String())
	}
	return env.Error
}

func TestRouterRequiresToken(t *testing.T) {
	h := newAPIHarness(t)

	for _, token := range []string{"", "garbage", signToken(t, "other-secret", h.actor.ID)} {
		rec := h.do(nethttp.MethodGet, "/api/states", nil, token)
		if rec.Code != nethttp.StatusUnauthorized {
			t.Fatalf("GET /api/states token=%q: expected 401, got %d", token, rec.Code)
		}
		if e := decodeError(t, rec); e.Code != "unauthorized" {
			t.Fatalf("GET /api/states: unexpected error %+v", e)
		}
	}

	if rec := h.do(nethttp.MethodGet, "/healthcheck", nil, ""); rec.Code != nethttp.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("GET /healthcheck: status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestRouterPublicRegistration(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(nethttp.MethodPost, "/api/users", map[string]string{"name": "Bia", "email": "bia@example.com", "password": "secret1"}, "")
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("POST /api/users: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatalf("POST /api/users: password leaked: %s", rec.Body.String())
	}
	if rec := h.do(nethttp.MethodGet, "/api/users", nil, ""); rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("GET /api/users: listing must require a token, got %d", rec.Code)
	}
}

func TestRouterCRUDErrorsCarryDetails(t *testing.T) {
	h := newAPIHarness(t)

	state := h.create("/api/states", map[string]any{"uf": "SP", "name": "Sao Paulo"})
	stateID := state["id"].(float64)
	h.create("/api/cities", map[string]any{"name": "Campinas", "state_id": stateID})

	rec := h.do(nethttp.MethodPost, "/api/cities", map[string]any{"name": "Campinas", "state_id": stateID}, h.token)
	if rec.Code != nethttp.StatusConflict {
		t.Fatalf("POST /api/cities (dup): expected 409, got %d", rec.Code)
	}
	if e := decodeError(t, rec); e.Code != "duplicate_name" || e.Details["name"] != "Campinas" || e.Details["suggestion"] == nil {
		t.Fatalf("POST /api/cities (dup): unexpected error %+v", e)
	}

	rec = h.do(nethttp.MethodGet, "/api/cities/abc", nil, h.token)
	if rec.Code != nethttp.StatusBadRequest || decodeError(t, rec).Code != "invalid_reference" {
		t.Fatalf("GET /api/cities/abc: status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = h.do(nethttp.MethodGet, "/api/harvests/99", nil, h.token)
	if rec.Code != nethttp.StatusNotFound || decodeError(t, rec).Details["id"] != float64(99) {
		t.Fatalf("GET /api/harvests/99: status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = h.do(nethttp.MethodPost, "/api/harvests", "{not json", h.token)
	if rec.Code != nethttp.StatusBadRequest || decodeError(t, rec).Code != "validation" {
		t.Fatalf("POST /api/harvests (bad json): status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = h.do(nethttp.MethodDelete, "/api/states/"+fmt.Sprint(stateID), nil, h.token)
	if rec.Code != nethttp.StatusConflict || decodeError(t, rec).Code != "conflict" {
		t.Fatalf("DELETE /api/states (referenced): status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouterRuralPropertyFlow(t *testing.T) {
	h := newAPIHarness(t)

	state := h.create("/api/states", map[string]any{"uf": "SP", "name": "Sao Paulo"})
	city := h.create("/api/cities", map[string]any{"name": "Campinas", "state_id": state["id"]})
	producer := h.create("/api/producers", map[string]any{"cpf_cnpj": "529.982.247-25", "name": "Joao", "city_id": city["id"]})
	if producer["cpf_cnpj"] != "52998224725" || producer["created_by_id"] != float64(h.actor.ID) {
		t.Fatalf("POST /api/producers: unexpected body %+v", producer)
	}

	body := map[string]any{
		"farm_name": "Fazenda", "total_area": "8", "arable_area": 5, "vegetation_area": 4,
		"producer_id": producer["id"], "city_id": city["id"],
	}
	rec := h.do(nethttp.MethodPost, "/api/rural-properties", body, h.token)
	if rec.Code != nethttp.StatusUnprocessableEntity {
		t.Fatalf("POST /api/rural-properties: expected 422, got %d (%s)", rec.Code, rec.Body.String())
	}
	if e := decodeError(t, rec); e.Code != "invariant_violation" || e.Details["total_area"] != float64(8) {
		t.Fatalf("POST /api/rural-properties: unexpected error %+v", e)
	}

	body["arable_area"] = "4"
	property := h.create("/api/rural-properties", body)
	path := "/api/rural-properties/" + fmt.Sprint(property["id"])

	rec = h.do(nethttp.MethodPatch, path, map[string]any{"farm_name": "Fazenda Nova"}, h.token)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("PATCH %s: status=%d body=%s", path, rec.Code, rec.Body.String())
	}
	var patched map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &patched)
	if patched["farm_name"] != "Fazenda Nova" || patched["total_area"] != float64(8) {
		t.Fatalf("PATCH %s: unexpected body %+v", path, patched)
	}

	rec = h.do(nethttp.MethodGet, "/api/dashboards", nil, h.token)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("GET /api/dashboards: status=%d", rec.Code)
	}
	var report types.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("GET /api/dashboards: decode: %v", err)
	}
	if report.TotalRuralProperties != 1 || report.TotalArea != 8 || len(report.Charts.ByState) != 1 {
		t.Fatalf("GET /api/dashboards: unexpected report %+v", report)
	}

	rec = h.do(nethttp.MethodGet, "/api/dashboards/export.xlsx", nil, h.token)
	if rec.Code != nethttp.StatusOK || rec.Header().Get("Content-Type") != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("GET /api/dashboards/export.xlsx: status=%d type=%q", rec.Code, rec.Header().Get("Content-Type"))
	}

	producerPath := "/api/producers/" + fmt.Sprint(producer["id"])
	if rec := h.do(nethttp.MethodDelete, producerPath, nil, h.token); rec.Code != nethttp.StatusNoContent {
		t.Fatalf("DELETE %s: status=%d body=%s", producerPath, rec.Code, rec.Body.String())
	}
	if rec := h.do(nethttp.MethodGet, path, nil, h.token); rec.Code != nethttp.StatusNotFound {
		t.Fatalf("GET %s after cascade: expected 404, got %d", path, rec.Code)
	}

	rec = h.do(nethttp.MethodGet, "/metrics", nil, "")
	if rec.Code != nethttp.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("agroregistry_dashboard_reports_total")) {
		t.Fatalf("GET /metrics: status=%d", rec.Code)
	}
}
