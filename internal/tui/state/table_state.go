package state

import (
	"github.com/thenoetrevino/leadbook/internal/models"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
)

// TableState is the leads table: the last loaded snapshot, the cursor and edit mode.
// The table is read-only until edit mode is toggled on.
type TableState struct {
	leads    []*models.Lead
	row      int
	col      int
	editMode bool
}

// NewTableState creates an empty, read-only table
func NewTableState() *TableState {
	return &TableState{}
}

// SetLeads replaces the snapshot and keeps the cursor in range.
// The cursor follows the previously selected lead id when it is still present.
func (s *TableState) SetLeads(leads []*models.Lead) {
	var selectedID int
	if l := s.Selected(); l != nil {
		selectedID = l.ID
	}

	s.leads = leads
	for i, l := range leads {
		if l.ID == selectedID {
			s.row = i
			return
		}
	}
	s.row = min(s.row, max(len(leads)-1, 0))
}

// Leads returns the current snapshot
func (s *TableState) Leads() []*models.Lead {
	return s.leads
}

// Selected returns the lead under the cursor, or nil for an empty table
func (s *TableState) Selected() *models.Lead {
	if s.row < 0 || s.row >= len(s.leads) {
		return nil
	}
	return s.leads[s.row]
}

// Row returns the cursor row
func (s *TableState) Row() int {
	return s.row
}

// Col returns the cursor column, an index into leadservice.Fields
func (s *TableState) Col() int {
	return s.col
}

// Field returns the column name under the cursor
func (s *TableState) Field() string {
	return leadservice.Fields[s.col]
}

// MoveRow moves the cursor by delta rows, clamped to the table
func (s *TableState) MoveRow(delta int) {
	s.row = min(max(s.row+delta, 0), max(len(s.leads)-1, 0))
}

// MoveCol moves the cursor by delta columns, clamped to the fields
func (s *TableState) MoveCol(delta int) {
	s.col = min(max(s.col+delta, 0), len(leadservice.Fields)-1)
}

// EditMode reports whether cells may be changed
func (s *TableState) EditMode() bool {
	return s.editMode
}

// ToggleEditMode flips edit mode and returns the new value
func (s *TableState) ToggleEditMode() bool {
	s.editMode = !s.editMode
	return s.editMode
}
