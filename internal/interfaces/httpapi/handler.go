package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthDTO{Status: "ok", Tracker: h.live.Status()})
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	entries, err := h.live.ListLiveMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	now := h.now()
	items := make([]liveMatchListItemDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, liveEntryToDTO(entry, now))
	}

	writeSuccess(ctx, w, http.StatusOK, liveMatchListDTO{Matches: items, Total: len(items)})
}

func (h *Handler) GetLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveMatch")
	defer span.End()

	snap, ok := h.snapshotFromRequest(ctx, w, r)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveMatchToDTO(snap))
}

func (h *Handler) GetLiveEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveEvents")
	defer span.End()

	snap, ok := h.snapshotFromRequest(ctx, w, r)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveEventsToDTO(snap))
}

func (h *Handler) GetLiveStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveStats")
	defer span.End()

	snap, ok := h.snapshotFromRequest(ctx, w, r)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveStatsToDTO(snap))
}

func (h *Handler) GetLiveLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveLineups")
	defer span.End()

	snap, ok := h.snapshotFromRequest(ctx, w, r)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveLineupsToDTO(snap))
}

// snapshotFromRequest writes the error response itself and reports false when
// no snapshot could be served.
func (h *Handler) snapshotFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (livematch.Snapshot, bool) {
	matchID, err := h.parseMatchID(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return livematch.Snapshot{}, false
	}

	snap, ok := h.live.LiveOrRefresh(ctx, matchID)
	if !ok {
		h.logger.WarnContext(ctx, "live data unavailable", "fixture_id", matchID)
		writeError(ctx, w, fmt.Errorf("%w: live data unavailable for match %d", usecase.ErrDependencyUnavailable, matchID))
		return livematch.Snapshot{}, false
	}
	return snap, true
}
