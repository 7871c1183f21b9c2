package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	playerservice "github.com/mulligan-crew/golftrip/app/modules/player/application"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// PlayerHandler serves the player profile endpoints.
type PlayerHandler struct {
	service playerservice.Service
	logger  *slog.Logger
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service playerservice.Service, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{service: service, logger: logger}
}

// Routes builds the player route tree.
func (h *PlayerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListProfiles)
	r.Put("/{playerID}", h.UpsertProfile)
	return r
}

// ListProfiles returns all player profiles keyed by player id.
func (h *PlayerHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list player profiles", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list player profiles")
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

type upsertProfileRequest struct {
	DisplayName sharedtypes.DisplayName `json:"display_name"`
}

// UpsertProfile creates or updates one player profile.
func (h *PlayerHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	playerID := sharedtypes.PlayerID(chi.URLParam(r, "playerID"))
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "missing player id")
		return
	}

	var req upsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusUnprocessableEntity, "display name must not be empty")
		return
	}

	if err := h.service.UpsertProfile(r.Context(), playerID, req.DisplayName); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to upsert player profile",
			attr.PlayerID("player_id", playerID),
			attr.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to upsert player profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
