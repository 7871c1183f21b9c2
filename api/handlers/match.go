package apihandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apistructs "github.com/mulligan-crew/golftrip/api/structs"
	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
	"github.com/mulligan-crew/golftrip/internal/utils"
)

// MatchHandler serves the live match and history endpoints.
type MatchHandler struct {
	service matchservice.Service
	bus     eventbus.EventBus
	helpers utils.Helpers
	logger  *slog.Logger
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service matchservice.Service, bus eventbus.EventBus, helpers utils.Helpers, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		service: service,
		bus:     bus,
		helpers: helpers,
		logger:  logger,
	}
}

// Routes builds the match route tree.
func (h *MatchHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateMatch)
	r.Get("/", h.ListActiveMatches)
	r.Get("/{matchID}", h.GetMatch)
	r.Post("/{matchID}/holes", h.RecordHoleOutcome)
	r.Get("/history", h.ListHistory)
	r.Get("/head-to-head", h.HeadToHead)
	return r
}

// CreateMatch starts a new live match.
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req apistructs.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CreateMatch(r.Context(), matchservice.MatchCreation{
		Kind:        req.Kind,
		SideA:       req.SideA,
		SideB:       req.SideB,
		SideARoster: req.SideARoster,
		SideBRoster: req.SideBRoster,
		Course:      req.Course,
		TeeTimeText: req.TeeTime,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to create match", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create match")
		return
	}
	if result.Failure != nil {
		writeError(w, http.StatusUnprocessableEntity, result.Failure.Reason)
		return
	}

	h.publish(r, matchevents.MatchCreatedV1, *result.Success)
	writeJSON(w, http.StatusCreated, result.Success)
}

// RecordHoleOutcome records one hole of a live match. When the outcome
// completes the match the response carries the finalized history record.
func (h *MatchHandler) RecordHoleOutcome(w http.ResponseWriter, r *http.Request) {
	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	var req apistructs.RecordHoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.RecordHoleOutcome(r.Context(), matchID, req.Hole, req.Outcome)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to record hole outcome",
			attr.MatchID("match_id", matchID),
			attr.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to record hole outcome")
		return
	}
	if result.Failure != nil {
		writeError(w, http.StatusUnprocessableEntity, result.Failure.Reason)
		return
	}

	h.publish(r, matchevents.HoleOutcomeRecordedV1, *result.Success)
	if result.Success.Finalized != nil {
		h.publish(r, matchevents.MatchFinalizedV1, *result.Success.Finalized)
	}
	writeJSON(w, http.StatusOK, result.Success)
}

// GetMatch returns one live match.
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	match, err := h.service.GetMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, matchdb.ErrMatchNotFound) {
			writeError(w, http.StatusNotFound, "match not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch match",
			attr.MatchID("match_id", matchID),
			attr.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to fetch match")
		return
	}

	writeJSON(w, http.StatusOK, matchResponse(*match))
}

// ListActiveMatches returns all live matches.
func (h *MatchHandler) ListActiveMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.service.ListActiveMatches(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list matches", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list matches")
		return
	}

	out := make([]apistructs.MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListHistory returns the finished-match history.
func (h *MatchHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListHistory(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list match history", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list match history")
		return
	}

	out := make([]apistructs.MatchHistoryResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, historyResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// HeadToHead returns aggregated results per unordered pair of sides.
func (h *MatchHandler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.HeadToHead(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to aggregate head-to-head", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to aggregate head-to-head")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *MatchHandler) publish(r *http.Request, topic string, payload any) {
	msg, err := h.helpers.CreateNewMessage(payload, topic)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to build event", attr.String("topic", topic), attr.Error(err))
		return
	}
	if err := h.bus.Publish(topic, msg); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to publish event", attr.String("topic", topic), attr.Error(err))
	}
}

func parseMatchID(w http.ResponseWriter, r *http.Request) (sharedtypes.MatchID, bool) {
	raw := chi.URLParam(r, "matchID")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return sharedtypes.MatchID{}, false
	}
	return sharedtypes.MatchID(id), true
}

func matchResponse(m matchdb.Match) apistructs.MatchResponse {
	return apistructs.MatchResponse{
		MatchID:     m.ID,
		Kind:        m.Kind,
		SideA:       m.SideA,
		SideB:       m.SideB,
		SideARoster: m.SideARoster,
		SideBRoster: m.SideBRoster,
		Course:      m.Course,
		TeeTime:     optionalTime(m.TeeTime),
		Holes:       m.Holes,
		WinsA:       m.WinsA,
		WinsB:       m.WinsB,
		HolesPlayed: m.HolesPlayed,
		Status:      m.Status,
	}
}

func historyResponse(rec matchdb.MatchHistory) apistructs.MatchHistoryResponse {
	return apistructs.MatchHistoryResponse{
		MatchID:     rec.ID,
		Kind:        rec.Kind,
		SideA:       rec.SideA,
		SideB:       rec.SideB,
		Winner:      rec.Winner,
		Loser:       rec.Loser,
		Tied:        rec.Tied,
		FinalScore:  rec.FinalScore,
		Course:      rec.Course,
		TeeTime:     optionalTime(rec.TeeTime),
		CompletedAt: rec.CompletedAt,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
