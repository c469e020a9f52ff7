package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/qr"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func equipmentRequestWithID(method, target, body, id string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestEquipmentHandler_Create(t *testing.T) {
	codec := qr.NewCodec("https://inventory.example.org")

	t.Run("Success", func(t *testing.T) {
		equipment := new(MockEquipmentService)
		handler := NewEquipmentHandler(equipment, new(MockCheckoutService), codec)

		equipment.On("Create", mock.Anything, mock.MatchedBy(func(eq *domain.Equipment) bool {
			return eq.Name == "Shure SM58" && eq.Category == domain.CategoryAudio
		})).Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/equipment", strings.NewReader(`{"name":"Shure SM58","category":"audio"}`))
		w := httptest.NewRecorder()
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		equipment.AssertExpectations(t)
	})

	t.Run("ValidationErrorMapsTo400", func(t *testing.T) {
		equipment := new(MockEquipmentService)
		handler := NewEquipmentHandler(equipment, new(MockCheckoutService), codec)

		equipment.On("Create", mock.Anything, mock.Anything).
			Return(domain.Validationf("name", "is required"))

		r := httptest.NewRequest(http.MethodPost, "/api/equipment", strings.NewReader(`{"category":"audio"}`))
		w := httptest.NewRecorder()
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BadJSON", func(t *testing.T) {
		handler := NewEquipmentHandler(new(MockEquipmentService), new(MockCheckoutService), codec)

		r := httptest.NewRequest(http.MethodPost, "/api/equipment", strings.NewReader(`{not json`))
		w := httptest.NewRecorder()
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BadPurchaseDate", func(t *testing.T) {
		handler := NewEquipmentHandler(new(MockEquipmentService), new(MockCheckoutService), codec)

		r := httptest.NewRequest(http.MethodPost, "/api/equipment", strings.NewReader(`{"name":"Mixer","category":"audio","purchase_date":"15/06/2024"}`))
		w := httptest.NewRecorder()
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEquipmentHandler_Get(t *testing.T) {
	codec := qr.NewCodec("https://inventory.example.org")

	t.Run("ReturnsEquipmentWithHistory", func(t *testing.T) {
		equipment := new(MockEquipmentService)
		checkouts := new(MockCheckoutService)
		handler := NewEquipmentHandler(equipment, checkouts, codec)

		equipment.On("Get", mock.Anything, int64(7)).
			Return(&domain.Equipment{ID: 7, Name: "Projector", Status: domain.EquipmentStatusAvailable}, nil)
		checkouts.On("History", mock.Anything, int64(7)).Return([]domain.Checkout{}, nil)

		w := httptest.NewRecorder()
		handler.Get(w, equipmentRequestWithID(http.MethodGet, "/api/equipment/7", "", "7"))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "equipment")
		assert.Contains(t, body, "history")
	})

	t.Run("NotFoundMapsTo404", func(t *testing.T) {
		equipment := new(MockEquipmentService)
		handler := NewEquipmentHandler(equipment, new(MockCheckoutService), codec)

		equipment.On("Get", mock.Anything, int64(99)).Return(nil, domain.NotFound("equipment"))

		w := httptest.NewRecorder()
		handler.Get(w, equipmentRequestWithID(http.MethodGet, "/api/equipment/99", "", "99"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		handler := NewEquipmentHandler(new(MockEquipmentService), new(MockCheckoutService), codec)

		w := httptest.NewRecorder()
		handler.Get(w, equipmentRequestWithID(http.MethodGet, "/api/equipment/abc", "", "abc"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEquipmentHandler_QRCode(t *testing.T) {
	codec := qr.NewCodec("https://inventory.example.org")
	equipment := new(MockEquipmentService)
	handler := NewEquipmentHandler(equipment, new(MockCheckoutService), codec)

	equipment.On("Get", mock.Anything, int64(7)).
		Return(&domain.Equipment{ID: 7, Name: "Projector", Category: domain.CategoryVideo}, nil)

	w := httptest.NewRecorder()
	handler.QRCode(w, equipmentRequestWithID(http.MethodGet, "/api/equipment/7/qr?size=128", "", "7"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), w.Body.Bytes()[:4])
}

func TestEquipmentHandler_Scan(t *testing.T) {
	codec := qr.NewCodec("https://inventory.example.org")

	t.Run("ResolvesScannedURL", func(t *testing.T) {
		equipment := new(MockEquipmentService)
		handler := NewEquipmentHandler(equipment, new(MockCheckoutService), codec)

		equipment.On("Get", mock.Anything, int64(12)).
			Return(&domain.Equipment{ID: 12, Name: "Mixer"}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/equipment/scan",
			strings.NewReader(`{"data":"https://inventory.example.org/equipment/12"}`))
		w := httptest.NewRecorder()
		handler.Scan(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Scan struct {
				EquipmentID int64  `json:"equipment_id"`
				Shape       string `json:"shape"`
			} `json:"scan"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(12), body.Scan.EquipmentID)
		assert.Equal(t, "url", body.Scan.Shape)
	})

	t.Run("UnrecognizedData", func(t *testing.T) {
		handler := NewEquipmentHandler(new(MockEquipmentService), new(MockCheckoutService), codec)

		r := httptest.NewRequest(http.MethodPost, "/api/equipment/scan", strings.NewReader(`{"data":"gibberish"}`))
		w := httptest.NewRecorder()
		handler.Scan(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEquipmentHandler_ToggleMaintenance(t *testing.T) {
	codec := qr.NewCodec("https://inventory.example.org")
	equipment := new(MockEquipmentService)
	handler := NewEquipmentHandler(equipment, new(MockCheckoutService), codec)

	equipment.On("ToggleMaintenance", mock.Anything, int64(7)).
		Return(nil, domain.Conflictf("cannot change status of equipment that is currently checked out"))

	w := httptest.NewRecorder()
	handler.ToggleMaintenance(w, equipmentRequestWithID(http.MethodPost, "/api/equipment/7/maintenance", "", "7"))

	assert.Equal(t, http.StatusConflict, w.Code)
}
