package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/wordle-teams/internal/domain/score"
	"github.com/riskibarqy/wordle-teams/internal/usecase"
)

const scoreDateLayout = "2006-01-02"

type submitScoreRequest struct {
	Date    string   `json:"date" validate:"required"`
	Answer  string   `json:"answer" validate:"required"`
	Guesses []string `json:"guesses" validate:"required,min=1,dive,required"`
}

type scoreDTO struct {
	ID           string   `json:"id"`
	PlayerID     string   `json:"playerId"`
	Date         string   `json:"date"`
	Answer       string   `json:"answer"`
	Guesses      []string `json:"guesses"`
	Solved       bool     `json:"solved"`
	CreatedAtUTC string   `json:"createdAtUtc"`
}

func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitScore")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitScoreRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.ParseInLocation(scoreDateLayout, req.Date, time.UTC)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must use YYYY-MM-DD: %v", usecase.ErrInvalidInput, err))
		return
	}

	entry, err := h.scoreService.Submit(ctx, principal, usecase.SubmitScoreInput{
		Date:    date,
		Answer:  req.Answer,
		Guesses: req.Guesses,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit score failed", "user_id", principal.UserID, "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scoreToDTO(entry))
}

func (h *Handler) ListMyScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyScores")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	entries, err := h.scoreService.ListMine(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list scores failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoreDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, scoreToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func scoreToDTO(v score.Entry) scoreDTO {
	return scoreDTO{
		ID:           v.ID,
		PlayerID:     v.PlayerID,
		Date:         v.Day().Format(scoreDateLayout),
		Answer:       v.Answer,
		Guesses:      append([]string(nil), v.Guesses...),
		Solved:       v.Solved(),
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
