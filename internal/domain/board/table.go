package board

import (
	"sort"
	"strings"

	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	Column    ColumnID
	Direction SortDirection
}

// Predicate restricts visible rows when registered as a column filter.
type Predicate func(row Row) bool

// Table owns the interactive state over a projection: sort spec, column
// filters, visibility and pin overrides, and row selection. Transitions
// are total functions; none of them can fail. The caller serializes
// access (single UI event loop equivalent).
type Table struct {
	projection Projection
	sort       *SortSpec
	filters    map[ColumnID]Predicate
	visibility map[ColumnID]bool
	pins       map[ColumnID]PinSide
	selected   map[string]struct{}
}

func NewTable() *Table {
	return &Table{
		filters:    make(map[ColumnID]Predicate),
		visibility: make(map[ColumnID]bool),
		pins:       make(map[ColumnID]PinSide),
		selected:   make(map[string]struct{}),
	}
}

// Apply installs a freshly built projection. User-chosen sort, filter and
// pin state survives the swap unless it references a column that no longer
// exists; stale references are dropped. Visibility overrides are tied to
// the month's calendar (day 2 being a Saturday in one month means nothing
// in the next), so they reset whenever the month changes. Selected rows
// that disappeared from the new row set are dropped too.
func (t *Table) Apply(projection Projection) {
	monthChanged := projection.Month != t.projection.Month
	t.projection = projection

	if t.sort != nil && !projection.hasColumn(t.sort.Column) {
		t.sort = nil
	}
	for id := range t.filters {
		if !projection.hasColumn(id) {
			delete(t.filters, id)
		}
	}
	if monthChanged {
		t.visibility = make(map[ColumnID]bool)
	}
	for id := range t.pins {
		if !projection.hasColumn(id) {
			delete(t.pins, id)
		}
	}

	rowIDs := make(map[string]struct{}, len(projection.Rows))
	for _, row := range projection.Rows {
		rowIDs[row.PlayerID] = struct{}{}
	}
	for id := range t.selected {
		if _, ok := rowIDs[id]; !ok {
			delete(t.selected, id)
		}
	}
}

func (t *Table) Sort(column ColumnID, direction SortDirection) {
	if !t.projection.hasColumn(column) {
		return
	}
	if direction != SortDesc {
		direction = SortAsc
	}
	t.sort = &SortSpec{Column: column, Direction: direction}
}

func (t *Table) ClearSort() {
	t.sort = nil
}

func (t *Table) SetFilter(column ColumnID, predicate Predicate) {
	if predicate == nil || !t.projection.hasColumn(column) {
		return
	}
	t.filters[column] = predicate
}

func (t *Table) ClearFilter(column ColumnID) {
	delete(t.filters, column)
}

// SetColumnVisible overrides the default visibility of a day column.
// Permanent columns are always visible and ignore the override.
func (t *Table) SetColumnVisible(column ColumnID, visible bool) {
	spec, ok := t.projection.column(column)
	if !ok || spec.Permanent {
		return
	}
	t.visibility[column] = visible
}

// TogglePin moves a column between unpinned and a pin side. The permanent
// playerName and monthTotal pins cannot be changed.
func (t *Table) TogglePin(column ColumnID, side PinSide) {
	spec, ok := t.projection.column(column)
	if !ok || spec.Permanent {
		return
	}
	if t.pins[column] == side {
		t.pins[column] = PinNone
		return
	}
	t.pins[column] = side
}

func (t *Table) SelectRows(playerIDs ...string) {
	t.selected = make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		t.selected[id] = struct{}{}
	}
}

// Snapshot is an immutable view of the table after a transition: effective
// columns, the filtered and sorted visible rows, and the live state.
type Snapshot struct {
	Month    scoring.Month
	Columns  []ColumnSpec
	Rows     []Row
	Sort     *SortSpec
	Filtered []ColumnID
	Selected []string
}

func (t *Table) Snapshot() Snapshot {
	columns := make([]ColumnSpec, len(t.projection.Columns))
	copy(columns, t.projection.Columns)
	for i := range columns {
		if override, ok := t.visibility[columns[i].ID]; ok && !columns[i].Permanent {
			columns[i].Visible = override
		}
		if side, ok := t.pins[columns[i].ID]; ok && !columns[i].Permanent {
			columns[i].Pin = side
		}
	}

	rows := make([]Row, 0, len(t.projection.Rows))
	for _, row := range t.projection.Rows {
		if t.matchesFilters(row) {
			rows = append(rows, row)
		}
	}
	t.sortRows(rows)

	var sortSpec *SortSpec
	if t.sort != nil {
		copied := *t.sort
		sortSpec = &copied
	}

	filtered := make([]ColumnID, 0, len(t.filters))
	for id := range t.filters {
		filtered = append(filtered, id)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i] < filtered[j] })

	selected := make([]string, 0, len(t.selected))
	for id := range t.selected {
		selected = append(selected, id)
	}
	sort.Strings(selected)

	return Snapshot{
		Month:    t.projection.Month,
		Columns:  columns,
		Rows:     rows,
		Sort:     sortSpec,
		Filtered: filtered,
		Selected: selected,
	}
}

func (t *Table) matchesFilters(row Row) bool {
	for _, predicate := range t.filters {
		if !predicate(row) {
			return false
		}
	}
	return true
}

func (t *Table) sortRows(rows []Row) {
	if t.sort == nil {
		return
	}

	spec := *t.sort
	if spec.Column == ColumnPlayerName {
		sort.SliceStable(rows, func(i, j int) bool {
			less := strings.ToLower(rows[i].PlayerName) < strings.ToLower(rows[j].PlayerName)
			if spec.Direction == SortDesc {
				return !less && rows[i].PlayerName != rows[j].PlayerName
			}
			return less
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lessScore(t.cellValue(rows[i], spec.Column), t.cellValue(rows[j], spec.Column), spec.Direction)
	})
}

func (t *Table) cellValue(row Row, column ColumnID) scoring.Score {
	if column == ColumnMonthTotal {
		return row.TotalScore()
	}
	spec, ok := t.projection.column(column)
	if !ok || spec.Day == 0 {
		return scoring.Absent()
	}
	return row.Days[spec.Day]
}

// lessScore orders numeric values by direction and places absent values
// after all numerics regardless of direction, so no-entry rows always land
// at the bottom.
func lessScore(a, b scoring.Score, direction SortDirection) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	if !a.Valid {
		return false
	}
	if direction == SortDesc {
		return a.Points > b.Points
	}
	return a.Points < b.Points
}
