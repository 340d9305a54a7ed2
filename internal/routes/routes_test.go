package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/autoshop-scheduler/internal/db"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

const testSecret = "test-secret"

type server struct {
	t        *testing.T
	engine   *gin.Engine
	operator uuid.UUID
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := openStore(t)
	op := uuid.New()
	require.NoError(t, store.Seed(models.Customer{ID: op, FullName: "Shop Operator"}, catalog.DefaultOffers()))

	cfg := &config.Config{JWTSecret: testSecret, SlotStepMinutes: 60}

	r := gin.New()
	RegisterRoutes(r, Stores{
		Appointments: store.Appointments(),
		Catalog:      store.Catalog(),
		Vehicles:     store.Vehicles(),
		Customers:    store.Customers(),
		Reports:      store.Reports(),
		History:      store.History(),
	}, cfg)

	return &server{t: t, engine: r, operator: op}
}

func token(t *testing.T, sub uuid.UUID, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *server) do(method, path, tok string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type offerList struct {
	Data []struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		LaborRate float64   `json:"labor_rate"`
	} `json:"data"`
	Total int `json:"total"`
}

type errorBody struct {
	Code string `json:"error_code"`
}

func TestPublicCatalog(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/public/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[offerList](t, w)
	assert.Equal(t, 9, list.Total)
	assert.Equal(t, "Battery Services", list.Data[0].Name)
}

func TestAuthRequired(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/me", token(t, uuid.New(), "superuser"), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/admin/appointments", token(t, uuid.New(), "customer"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "unauthorized", decode[errorBody](t, w).Code)
}

func TestBookingFlow(t *testing.T) {
	s := newServer(t)

	ana := uuid.New()
	anaTok := token(t, ana, "customer")
	opTok := token(t, s.operator, "operator")

	w := s.do(http.MethodPut, "/api/me", anaTok, gin.H{"full_name": "Ana Reyes", "phone": "0917 123 4567"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/me/vehicles", anaTok, gin.H{"brand": "Toyota", "model": "Vios", "plate_no": "abc 1234"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	vehicle := decode[struct {
		ID      uuid.UUID `json:"id"`
		PlateNo string    `json:"plate_no"`
	}](t, w)
	assert.Equal(t, "ABC 1234", vehicle.PlateNo)

	offers := decode[offerList](t, s.do(http.MethodGet, "/api/public/services", "", nil))
	ids := map[string]uuid.UUID{}
	for _, o := range offers.Data {
		ids[o.Name] = o.ID
	}

	booking := gin.H{
		"vehicle_id":  vehicle.ID,
		"service_ids": []uuid.UUID{ids["Oil Change"], ids["Tire Services"]},
		"date":        "2099-01-05",
		"time":        "08:00",
	}

	w = s.do(http.MethodPost, "/api/me/appointments", anaTok, booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ap := decode[struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}](t, w)
	assert.Equal(t, "Pending", ap.Status)

	w = s.do(http.MethodPost, "/api/me/appointments", anaTok, booking)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_conflict", decode[errorBody](t, w).Code)

	booking["time"] = "17:01"
	w = s.do(http.MethodPost, "/api/me/appointments", anaTok, booking)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalid_time_window", decode[errorBody](t, w).Code)

	w = s.do(http.MethodGet, "/api/public/availability?date=2099-01-05", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"time":"08:00"`)
	assert.Contains(t, w.Body.String(), `"time":"09:00"`)

	w = s.do(http.MethodDelete, "/api/appointments/"+ap.ID.String(), opTok, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", decode[errorBody](t, w).Code)

	w = s.do(http.MethodGet, "/api/appointments/"+ap.ID.String()+"/invoice", anaTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	inv := decode[struct {
		Total float64 `json:"total_labor_cost"`
	}](t, w)
	assert.Equal(t, 395.0, inv.Total)

	w = s.do(http.MethodPatch, "/api/admin/appointments/"+ap.ID.String()+"/status", opTok, gin.H{"status": "Approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPatch, "/api/me/appointments/"+ap.ID.String()+"/cancel", anaTok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/history", anaTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Data []struct {
			ItemType string `json:"item_type"`
		} `json:"data"`
		Total int64 `json:"total"`
	}](t, w)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, "Appointment_Canceled", page.Data[0].ItemType)

	w = s.do(http.MethodGet, "/api/me/appointments/latest-status", anaTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Canceled"`)

	w = s.do(http.MethodGet, "/api/me/dashboard", anaTok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	dash := decode[struct {
		CompletedServices int64 `json:"completed_services"`
		Vehicles          int64 `json:"vehicles"`
	}](t, w)
	assert.Zero(t, dash.CompletedServices)
	assert.EqualValues(t, 1, dash.Vehicles)
}

func TestOperatorManagesCatalog(t *testing.T) {
	s := newServer(t)
	opTok := token(t, s.operator, "operator")

	w := s.do(http.MethodPost, "/api/admin/services", opTok, gin.H{"name": "Wheel Alignment", "labor_rate": 300})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/admin/services", opTok, gin.H{"name": "Wheel Alignment", "labor_rate": 300})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_name", decode[errorBody](t, w).Code)

	w = s.do(http.MethodPost, "/api/admin/services", opTok, gin.H{"name": "Free Check"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodDelete, "/api/admin/services/not-a-uuid", opTok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := decode[offerList](t, s.do(http.MethodGet, "/api/public/services", "", nil))
	assert.Equal(t, 10, list.Total)

	w = s.do(http.MethodGet, "/api/history", opTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode[struct {
		Total int64 `json:"total"`
	}](t, w).Total)
}

func openStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := dbpkg.OpenMemory("")
	require.NoError(t, err)
	return repository.NewStore(db)
}
