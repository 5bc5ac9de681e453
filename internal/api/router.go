package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/frogfen/internal/api/handler"
	"github.com/mcoot/frogfen/internal/api/middleware"
	"github.com/mcoot/frogfen/internal/api/response"
	"github.com/mcoot/frogfen/internal/services/dictionary"
	"github.com/mcoot/frogfen/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    game.ControllerInterface
	DictionaryService dictionary.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.GameController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Recovery(cfg.Logger))

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("", sessionHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/placements", sessionHandler.Place).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/placements", sessionHandler.Unplace).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/submit", sessionHandler.Submit).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}

func healthHandler(dict dictionary.ServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response.Health{Status: "ok"}
		status := http.StatusOK
		if dict == nil || !dict.IsLoaded() {
			resp.Status = "dictionary_not_loaded"
			status = http.StatusServiceUnavailable
		} else {
			resp.DictionaryWords = dict.WordCount()
		}
		response.JSON(w, status, resp)
	}
}
