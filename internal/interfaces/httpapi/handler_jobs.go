package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-live/internal/usecase"
)

type ingestCompetitionsRequest struct {
	Competitions []usecase.IngestCompetitionInput `json:"competitions" validate:"required,min=1,max=20,dive"`
}

type ingestCompetitionsResponse struct {
	RunID   string                            `json:"run_id"`
	Results []usecase.IngestCompetitionResult `json:"results"`
}

// RefreshLiveMatch bypasses the cache and re-fetches one match synchronously.
func (h *Handler) RefreshLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshLiveMatch")
	defer span.End()

	matchID, err := h.parseMatchID(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	snap, ok := h.live.ForceRefresh(ctx, matchID)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: refresh failed for match %d", usecase.ErrDependencyUnavailable, matchID))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveMatchToDTO(snap))
}

func (h *Handler) RunCompetitionIngestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCompetitionIngestion")
	defer span.End()

	if h.ingestion == nil {
		writeError(ctx, w, fmt.Errorf("%w: competition ingestion is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req ingestCompetitionsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is required")
		}
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	runID, err := h.runIDs.NewID()
	if err != nil {
		h.logger.WarnContext(ctx, "generate ingestion run id failed", "error", err)
	}
	logger := h.logger.With("run_id", runID)
	logger.InfoContext(ctx, "competition ingestion started", "competitions", len(req.Competitions))

	results := h.ingestion.IngestCompetitions(ctx, req.Competitions)
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}
	logger.InfoContext(ctx, "competition ingestion finished", "competitions", len(results), "failed", failed)

	writeSuccess(ctx, w, http.StatusOK, ingestCompetitionsResponse{RunID: runID, Results: results})
}
