package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every handler onto one mux router. Equipment and ledger
// routes sit behind the auth middleware; registration, login and
// verification are open by necessity.
func NewRouter(
	authMW *AuthMiddleware,
	authHandler *AuthHandler,
	equipmentHandler *EquipmentHandler,
	checkoutHandler *CheckoutHandler,
	exportHandler *ExportHandler,
) *mux.Router {
	r := mux.NewRouter()

	// auth
	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/verify", authHandler.Verify).Methods(http.MethodPost)
	auth.HandleFunc("/resend-verification", authHandler.ResendVerification).Methods(http.MethodPost)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(authMW.Require)

	authed.HandleFunc("/auth/profile", authHandler.Profile).Methods(http.MethodGet)
	authed.HandleFunc("/auth/profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// equipment registry
	authed.HandleFunc("/equipment", equipmentHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/equipment", equipmentHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/equipment/{id:[0-9]+}/maintenance", equipmentHandler.ToggleMaintenance).Methods(http.MethodPost)
	authed.HandleFunc("/equipment/{id:[0-9]+}/qr", equipmentHandler.QRCode).Methods(http.MethodGet)
	authed.HandleFunc("/scan", equipmentHandler.Scan).Methods(http.MethodPost)

	// checkout ledger
	authed.HandleFunc("/equipment/{id:[0-9]+}/checkout", checkoutHandler.Checkout).Methods(http.MethodPost)
	authed.HandleFunc("/equipment/{id:[0-9]+}/checkin", checkoutHandler.Checkin).Methods(http.MethodPost)
	authed.HandleFunc("/equipment/{id:[0-9]+}/checkout/active", checkoutHandler.Active).Methods(http.MethodGet)
	authed.HandleFunc("/checkouts/overdue", checkoutHandler.Overdue).Methods(http.MethodGet)
	authed.HandleFunc("/checkouts/recent", checkoutHandler.RecentActivity).Methods(http.MethodGet)
	authed.HandleFunc("/reports/usage", checkoutHandler.UsageReport).Methods(http.MethodGet)

	// exports
	authed.HandleFunc("/export/equipment", exportHandler.Equipment).Methods(http.MethodGet)
	authed.HandleFunc("/export/history", exportHandler.History).Methods(http.MethodGet)

	return r
}
