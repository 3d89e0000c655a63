package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/wordle-teams/internal/domain/board"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/usecase"
)

type boardColumnDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Day       int    `json:"day,omitempty"`
	Visible   bool   `json:"visible"`
	Pin       string `json:"pin,omitempty"`
	Permanent bool   `json:"permanent"`
}

type boardRowDTO struct {
	PlayerID   string         `json:"playerId"`
	PlayerName string         `json:"playerName"`
	Days       map[string]int `json:"days"`
	Total      *int           `json:"total"`
}

type boardSortDTO struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

type boardDTO struct {
	Month    string           `json:"month"`
	Columns  []boardColumnDTO `json:"columns"`
	Rows     []boardRowDTO    `json:"rows"`
	Sort     *boardSortDTO    `json:"sort,omitempty"`
	Filtered []string         `json:"filtered,omitempty"`
	Selected []string         `json:"selected,omitempty"`
}

// GetBoard selects a team/month board and optionally applies table
// transitions carried as query params: sort=column:asc|desc,
// hide=col1,col2, pin=column:left|right, minTotal=N, select=id1,id2.
// Hidden columns (weekend days for weekday teams, plus any hide=
// overrides) are omitted from the response entirely.
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	if _, ok := principalFromContext(ctx); !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	monthParam := strings.TrimSpace(r.URL.Query().Get("month"))
	if monthParam == "" {
		writeError(ctx, w, fmt.Errorf("%w: month query param is required", usecase.ErrInvalidInput))
		return
	}
	month, err := scoring.ParseMonth(monthParam)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	snapshot, err := h.boardService.Select(ctx, teamID, month)
	if err != nil {
		h.logger.WarnContext(ctx, "board selection failed", "team_id", teamID, "month", month.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	snapshot, err = h.applyBoardParams(snapshot, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(snapshot))
}

func (h *Handler) applyBoardParams(snapshot board.Snapshot, query map[string][]string) (board.Snapshot, error) {
	get := func(key string) string {
		values := query[key]
		if len(values) == 0 {
			return ""
		}
		return strings.TrimSpace(values[0])
	}

	if raw := get("sort"); raw != "" {
		column, direction, found := strings.Cut(raw, ":")
		if !found || (direction != string(board.SortAsc) && direction != string(board.SortDesc)) {
			return snapshot, fmt.Errorf("%w: sort must use column:asc or column:desc", usecase.ErrInvalidInput)
		}
		snapshot = h.boardService.Sort(board.ColumnID(column), board.SortDirection(direction))
	}

	if raw := get("hide"); raw != "" {
		for _, column := range strings.Split(raw, ",") {
			snapshot = h.boardService.SetColumnVisible(board.ColumnID(strings.TrimSpace(column)), false)
		}
	}

	if raw := get("pin"); raw != "" {
		column, side, found := strings.Cut(raw, ":")
		if !found || (side != string(board.PinLeft) && side != string(board.PinRight)) {
			return snapshot, fmt.Errorf("%w: pin must use column:left or column:right", usecase.ErrInvalidInput)
		}
		snapshot = h.boardService.TogglePin(board.ColumnID(column), board.PinSide(side))
	}

	if raw := get("minTotal"); raw != "" {
		minTotal, err := strconv.Atoi(raw)
		if err != nil {
			return snapshot, fmt.Errorf("%w: minTotal must be an integer: %v", usecase.ErrInvalidInput, err)
		}
		snapshot = h.boardService.SetFilter(board.ColumnMonthTotal, func(row board.Row) bool {
			total := row.TotalScore()
			return total.Valid && total.Points >= minTotal
		})
	}

	if raw := get("select"); raw != "" {
		ids := make([]string, 0)
		for _, id := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				ids = append(ids, trimmed)
			}
		}
		snapshot = h.boardService.SelectRows(ids...)
	}

	return snapshot, nil
}

func boardToDTO(v board.Snapshot) boardDTO {
	columns := make([]boardColumnDTO, 0, len(v.Columns))
	visibleDays := make(map[int]struct{}, len(v.Columns))
	for _, column := range v.Columns {
		if !column.Visible {
			continue
		}
		if column.Day > 0 {
			visibleDays[column.Day] = struct{}{}
		}
		columns = append(columns, boardColumnDTO{
			ID:        string(column.ID),
			Title:     column.Title,
			Day:       column.Day,
			Visible:   column.Visible,
			Pin:       string(column.Pin),
			Permanent: column.Permanent,
		})
	}

	rows := make([]boardRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		days := make(map[string]int, len(row.Days))
		for day, value := range row.Days {
			if _, ok := visibleDays[day]; ok && value.Valid {
				days[string(board.DayColumnID(day))] = value.Points
			}
		}

		var total *int
		if totalScore := row.TotalScore(); totalScore.Valid {
			points := totalScore.Points
			total = &points
		}

		rows = append(rows, boardRowDTO{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Days:       days,
			Total:      total,
		})
	}

	var sortDTO *boardSortDTO
	if v.Sort != nil {
		sortDTO = &boardSortDTO{
			Column:    string(v.Sort.Column),
			Direction: string(v.Sort.Direction),
		}
	}

	filtered := make([]string, 0, len(v.Filtered))
	for _, column := range v.Filtered {
		filtered = append(filtered, string(column))
	}

	return boardDTO{
		Month:    v.Month.String(),
		Columns:  columns,
		Rows:     rows,
		Sort:     sortDTO,
		Filtered: filtered,
		Selected: v.Selected,
	}
}
