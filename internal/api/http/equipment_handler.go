package http

import (
	"net/http"
	"strconv"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/qr"
	"church-inventory-backend/internal/service"

	"github.com/gorilla/mux"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
	checkouts service.CheckoutService
	codec     *qr.Codec
}

func NewEquipmentHandler(equipment service.EquipmentService, checkouts service.CheckoutService, codec *qr.Codec) *EquipmentHandler {
	return &EquipmentHandler{
		equipment: equipment,
		checkouts: checkouts,
		codec:     codec,
	}
}

type equipmentRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Model         *string  `json:"model"`
	SerialNumber  *string  `json:"serial_number"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PurchaseDate  *string  `json:"purchase_date"` // "2006-01-02"
	PurchasePrice *float64 `json:"purchase_price"`
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.EquipmentFilter{
		Search:   r.URL.Query().Get("search"),
		Category: domain.EquipmentCategory(r.URL.Query().Get("category")),
		Status:   domain.EquipmentStatus(r.URL.Query().Get("status")),
	}
	list, err := h.equipment.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	stats, err := h.equipment.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"equipment": list,
		"stats":     stats,
	})
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	eq := &domain.Equipment{}
	if err := applyEquipmentFields(eq, req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.equipment.Create(r.Context(), eq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipment.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	history, err := h.checkouts.History(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"equipment": eq,
		"history":   annotate(history, time.Now().UTC()),
	})
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req equipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	update, err := toEquipmentUpdate(req)
	if err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipment.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.equipment.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) ToggleMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipment.ToggleMaintenance(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

// QRCode serves the printable PNG label for an equipment item.
func (h *EquipmentHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	eq, err := h.equipment.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	size := 300
	if s := r.URL.Query().Get("size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 64 && n <= 1024 {
			size = n
		}
	}
	png, err := h.codec.EncodePNG(eq.ID, eq.Name, string(eq.Category), size)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Scan resolves arbitrary scanned text to an equipment record.
func (h *EquipmentHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data string `json:"data"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := qr.Decode(req.Data)
	if err != nil {
		writeError(w, domain.Validationf("data", "QR code not recognized"))
		return
	}
	eq, err := h.equipment.Get(r.Context(), result.EquipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scan":      result,
		"equipment": eq,
	})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("id", "invalid equipment id")
	}
	return id, nil
}

func applyEquipmentFields(eq *domain.Equipment, req equipmentRequest) error {
	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Category != nil {
		eq.Category = domain.EquipmentCategory(*req.Category)
	}
	if req.Model != nil {
		eq.Model = *req.Model
	}
	if req.SerialNumber != nil {
		eq.SerialNumber = *req.SerialNumber
	}
	if req.Description != nil {
		eq.Description = *req.Description
	}
	if req.Location != nil {
		eq.Location = *req.Location
	}
	if req.PurchaseDate != nil {
		d, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return err
		}
		eq.PurchaseDate = d
	}
	if req.PurchasePrice != nil {
		eq.PurchasePrice = req.PurchasePrice
	}
	return nil
}

func toEquipmentUpdate(req equipmentRequest) (service.EquipmentUpdate, error) {
	update := service.EquipmentUpdate{
		Name:          req.Name,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,
		Description:   req.Description,
		Location:      req.Location,
		PurchasePrice: req.PurchasePrice,
	}
	if req.Category != nil {
		cat := domain.EquipmentCategory(*req.Category)
		update.Category = &cat
	}
	if req.PurchaseDate != nil {
		d, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return update, err
		}
		update.PurchaseDate = d
	}
	return update, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.Validationf("date", "must be formatted YYYY-MM-DD")
	}
	return &d, nil
}
