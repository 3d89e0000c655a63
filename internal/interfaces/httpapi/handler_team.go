package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/usecase"
)

type createTeamRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	PlayWeekends  bool   `json:"playWeekends"`
	ScoringSystem string `json:"scoringSystem" validate:"required"`
}

type addTeamPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

type teamDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PlayWeekends  bool     `json:"playWeekends"`
	ScoringSystem string   `json:"scoringSystem"`
	CreatorID     string   `json:"creatorId"`
	PlayerIDs     []string `json:"playerIds"`
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Create(ctx, principal, usecase.CreateTeamInput{
		Name:          req.Name,
		PlayWeekends:  req.PlayWeekends,
		ScoringSystem: req.ScoringSystem,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) ListMyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyTeams")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teams, err := h.teamService.ListMine(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) AddTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeamPlayer")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req addTeamPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.AddPlayer(ctx, principal, teamID, req.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "add team player failed", "team_id", teamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:            v.ID,
		Name:          v.Name,
		PlayWeekends:  v.PlayWeekends,
		ScoringSystem: string(v.ScoringSystem),
		CreatorID:     v.CreatorID,
		PlayerIDs:     append([]string(nil), v.PlayerIDs...),
	}
}
