package http

import (
	"github.com/gorilla/mux"

	"toolrental-pos/internal/repository"
	"toolrental-pos/internal/security"
	"toolrental-pos/internal/service"
)

// NewRouter assembles the public API. The token exchange and the health
// probe are the only unauthenticated routes.
func NewRouter(
	checkout service.CheckoutService,
	archive repository.AgreementRepository,
	tokens security.TokenManager,
	apiKeys []string,
) *mux.Router {
	checkoutHandler := NewCheckoutHandler(checkout, archive)
	authHandler := NewAuthHandler(apiKeys, tokens)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", checkoutHandler.HandleHealth).Methods("GET")
	router.HandleFunc("/api/v1/auth/token", authHandler.HandleToken).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))
	api.HandleFunc("/checkout", checkoutHandler.HandleCheckout).Methods("POST")
	api.HandleFunc("/tools", checkoutHandler.HandleListTools).Methods("GET")
	api.HandleFunc("/agreements/{id}", checkoutHandler.HandleGetAgreement).Methods("GET")

	return router
}
