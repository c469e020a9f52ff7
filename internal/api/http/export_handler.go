package http

import (
	"net/http"

	"church-inventory-backend/internal/service"
)

type ExportHandler struct {
	exports service.ExportService
}

func NewExportHandler(exports service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

func (h *ExportHandler) Equipment(w http.ResponseWriter, r *http.Request) {
	data, err := h.exports.ExportEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	serveCSV(w, "equipment_inventory.csv", data)
}

func (h *ExportHandler) History(w http.ResponseWriter, r *http.Request) {
	data, err := h.exports.ExportHistory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	serveCSV(w, "checkout_history.csv", data)
}

func serveCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
