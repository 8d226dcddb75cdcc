package rounds

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vod-rounds/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const summaryContentType = "text/plain; charset=utf-8"

// Handler exposes round detection HTTP endpoints using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional Metrics.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// RegisterReadings handles POST /matches/{match_id}/readings.
// Body: JSON array of readings, e.g.
// [{ "timestamp": 10.0, "timer_value": "1:39" },
//  { "timestamp": 20.0, "timer_value": { "timer": "0:40", "red_triangle": true } }].
func (h *Handler) RegisterReadings(w http.ResponseWriter, r *http.Request) {
	matchID := MatchID(chi.URLParam(r, "match_id"))
	if matchID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var readings []TimerReading
	if err := json.NewDecoder(r.Body).Decode(&readings); err != nil {
		h.log.Debug("invalid readings body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.svc.RegisterReadings(matchID, readings); err != nil {
		if errors.Is(err, ErrMatchEnded) {
			h.log.Info("readings rejected match ended",
				slog.String("match_id", string(matchID)),
				slog.Int("count", len(readings)))
			w.WriteHeader(http.StatusConflict)
			return
		}
		h.log.Error("register readings failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Debug("readings registered",
		slog.String("match_id", string(matchID)),
		slog.Int("count", len(readings)))
	w.WriteHeader(http.StatusCreated)
	if h.metrics != nil {
		h.metrics.AddReadingsRegistered(len(readings))
	}
}

// GetRounds handles GET /matches/{match_id}/rounds.
func (h *Handler) GetRounds(w http.ResponseWriter, r *http.Request) {
	matchID := MatchID(chi.URLParam(r, "match_id"))
	if matchID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	detected, ok := h.svc.GetRounds(matchID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if detected == nil {
		detected = []Round{}
	}

	h.writeJSON(w, detected)
}

// GetClips handles GET /matches/{match_id}/clips.
func (h *Handler) GetClips(w http.ResponseWriter, r *http.Request) {
	matchID := MatchID(chi.URLParam(r, "match_id"))
	if matchID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	clips, ok := h.svc.GetClips(matchID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if clips == nil {
		clips = []RoundClip{}
	}

	h.writeJSON(w, clips)
}

// GetSummary handles GET /matches/{match_id}/summary.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	matchID := MatchID(chi.URLParam(r, "match_id"))
	if matchID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	summary, ok := h.svc.GetSummary(matchID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", summaryContentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(summary))
}

// EndMatch handles POST /matches/{match_id}/end.
func (h *Handler) EndMatch(w http.ResponseWriter, r *http.Request) {
	matchID := MatchID(chi.URLParam(r, "match_id"))
	if matchID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.svc.EndMatch(matchID); err != nil {
		h.log.Error("end match failed", slog.String("match_id", string(matchID)), slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Info("match ended", slog.String("match_id", string(matchID)))
	w.WriteHeader(http.StatusOK)
	if h.metrics != nil {
		h.metrics.IncMatchesEnded()
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response failed", slog.String("error", err.Error()))
	}
}
