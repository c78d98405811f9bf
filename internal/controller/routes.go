package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the HTTP routes.
func NewRouter(handler *WrappedHandler) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/wrapped", handler.GetWrapped).Methods(http.MethodGet)
	api.HandleFunc("/wrapped/demo", handler.GetDemo).Methods(http.MethodGet)

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	return router
}
