package apihandlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apistructs "github.com/mulligan-crew/golftrip/api/structs"
	handicapservice "github.com/mulligan-crew/golftrip/app/modules/handicap/application"
	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
	"github.com/mulligan-crew/golftrip/internal/utils"
)

// maxScorecardBytes caps uploaded spreadsheet size.
const maxScorecardBytes = 8 << 20

// HandicapHandler serves the score recording and leaderboard endpoints.
type HandicapHandler struct {
	service handicapservice.Service
	bus     eventbus.EventBus
	helpers utils.Helpers
	logger  *slog.Logger
}

// NewHandicapHandler creates a new HandicapHandler.
func NewHandicapHandler(service handicapservice.Service, bus eventbus.EventBus, helpers utils.Helpers, logger *slog.Logger) *HandicapHandler {
	return &HandicapHandler{
		service: service,
		bus:     bus,
		helpers: helpers,
		logger:  logger,
	}
}

// Routes builds the handicap route tree.
func (h *HandicapHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/scores", h.RecordScore)
	r.Post("/scores/import", h.ImportScorecard)
	r.Get("/leaderboard", h.GetLeaderboard)
	r.Get("/leaderboard/chart", h.GetLeaderboardChart)
	r.Get("/leaderboard/export", h.ExportLeaderboard)
	return r
}

// RecordScore records one raw round score.
func (h *HandicapHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	var req apistructs.RecordScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.RecordScore(r.Context(), handicapservice.ScoreSubmission{
		PlayerID: req.PlayerID,
		Course:   req.Course,
		Score:    req.Score,
		Rating:   req.Rating,
		Slope:    req.Slope,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to record score", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to record score")
		return
	}
	if result.Failure != nil {
		writeError(w, http.StatusUnprocessableEntity, result.Failure.Reason)
		return
	}

	h.announce(r, *result.Success)
	writeJSON(w, http.StatusCreated, result.Success)
}

// ImportScorecard ingests an uploaded spreadsheet of round scores. The course
// parameters apply to every row.
func (h *HandicapHandler) ImportScorecard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxScorecardBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("scorecard")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing scorecard file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxScorecardBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read scorecard file")
		return
	}

	course := sharedtypes.CourseName(r.FormValue("course"))
	rating, err := strconv.ParseFloat(r.FormValue("rating"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rating")
		return
	}
	slope, err := strconv.Atoi(r.FormValue("slope"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid slope")
		return
	}

	result, err := h.service.ImportScorecard(r.Context(), header.Filename, data, course, sharedtypes.Rating(rating), sharedtypes.Slope(slope))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to import scorecard",
			attr.String("file_name", header.Filename),
			attr.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to import scorecard")
		return
	}
	if result.Failure != nil {
		writeError(w, http.StatusUnprocessableEntity, result.Failure.Reason)
		return
	}

	for _, recorded := range *result.Success {
		h.announce(r, recorded)
	}
	writeJSON(w, http.StatusCreated, result.Success)
}

// GetLeaderboard returns the aggregated leaderboard, lowest handicap first.
func (h *HandicapHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.AggregateLeaderboard(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to aggregate leaderboard", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to aggregate leaderboard")
		return
	}

	rows := make([]handicapevents.LeaderboardEntryV1, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, handicapevents.LeaderboardEntryV1{
			PlayerID:    e.PlayerID,
			DisplayName: e.DisplayName,
			Handicap:    e.Handicap,
		})
	}

	writeJSON(w, http.StatusOK, handicapevents.LeaderboardUpdatedPayloadV1{
		Entries:     rows,
		GeneratedAt: time.Now().UTC(),
	})
}

// GetLeaderboardChart renders the leaderboard as a PNG bar chart.
func (h *HandicapHandler) GetLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.GenerateLeaderboardChart(r.Context(), handicapservice.DefaultChartPalette)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render leaderboard chart", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render leaderboard chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// ExportLeaderboard returns the leaderboard as an xlsx download.
func (h *HandicapHandler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.ExportLeaderboardXLSX(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to export leaderboard", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to export leaderboard")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(book)
}

// announce publishes the recorded-score event so bus subscribers see scores
// submitted over HTTP too. Publish failures are logged, not surfaced; the
// score is already durable.
func (h *HandicapHandler) announce(r *http.Request, recorded handicapevents.RoundScoreRecordedPayloadV1) {
	msg, err := h.helpers.CreateNewMessage(recorded, handicapevents.RoundScoreRecordedV1)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to build recorded-score event", attr.Error(err))
		return
	}
	if err := h.bus.Publish(handicapevents.RoundScoreRecordedV1, msg); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to publish recorded-score event", attr.Error(err))
	}
}
