package http

import (
	"net/http"
	"strconv"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/service"
)

type CheckoutHandler struct {
	checkouts service.CheckoutService
}

func NewCheckoutHandler(checkouts service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts}
}

// checkoutView is a ledger entry plus its derived, never-persisted facts.
type checkoutView struct {
	domain.Checkout
	Overdue      bool `json:"overdue"`
	DurationDays int  `json:"duration_days"`
}

func annotate(list []domain.Checkout, now time.Time) []checkoutView {
	views := make([]checkoutView, 0, len(list))
	for _, co := range list {
		views = append(views, checkoutView{
			Checkout:     co,
			Overdue:      co.Overdue(now),
			DurationDays: co.DurationDays(now),
		})
	}
	return views
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		CheckedOutBy       string `json:"checked_out_by"`
		ExpectedReturnDate string `json:"expected_return_date"`
		ConditionOut       string `json:"condition_out"`
		Notes              string `json:"notes"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	expected, err := parseDate(req.ExpectedReturnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	co, err := h.checkouts.Checkout(r.Context(), id, service.CheckoutRequest{
		CheckedOutBy:       req.CheckedOutBy,
		ExpectedReturnDate: expected,
		ConditionOut:       domain.Condition(req.ConditionOut),
		Notes:              req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, co)
}

func (h *CheckoutHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		CheckedInBy string `json:"checked_in_by"`
		ConditionIn string `json:"condition_in"`
		Notes       string `json:"notes"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	co, err := h.checkouts.Checkin(r.Context(), id, service.CheckinRequest{
		CheckedInBy: req.CheckedInBy,
		ConditionIn: domain.Condition(req.ConditionIn),
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, co)
}

func (h *CheckoutHandler) Active(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	co, err := h.checkouts.ActiveCheckout(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	views := annotate([]domain.Checkout{*co}, time.Now().UTC())
	writeJSON(w, http.StatusOK, views[0])
}

func (h *CheckoutHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	list, err := h.checkouts.ListOverdue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, annotate(list, time.Now().UTC()))
}

func (h *CheckoutHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	list, err := h.checkouts.RecentActivity(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, annotate(list, time.Now().UTC()))
}

func (h *CheckoutHandler) UsageReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.checkouts.UsageReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
