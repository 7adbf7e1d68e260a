package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	EditCellMode                  // Editing one cell of the leads table
	DeleteConfirmMode             // Confirming lead deletion
	ExportMode                    // Choosing an export format
	NoteEditMode                  // Typing in the calendar note editor
)

// Tab identifies one page of the tab bar
type Tab int

const (
	TabLeadsInput Tab = iota
	TabLeadsTable
	TabCalendar
	TabCalls
	TabEmail
	TabMessaging
	TabForms
	TabIntegrations
	TabSettings
)

// Tabs lists every tab in display order
var Tabs = []Tab{
	TabLeadsInput, TabLeadsTable, TabCalendar, TabCalls, TabEmail,
	TabMessaging, TabForms, TabIntegrations, TabSettings,
}

var tabNames = map[Tab]string{
	TabLeadsInput:   "Leads Input",
	TabLeadsTable:   "Leads Table",
	TabCalendar:     "Calendar",
	TabCalls:        "Calls",
	TabEmail:        "Email",
	TabMessaging:    "Messaging",
	TabForms:        "Forms",
	TabIntegrations: "Integrations",
	TabSettings:     "Settings",
}

// String returns the tab title
func (t Tab) String() string {
	return tabNames[t]
}

// TabNames returns the titles of every tab in display order
func TabNames() []string {
	names := make([]string, len(Tabs))
	for i, t := range Tabs {
		names[i] = t.String()
	}
	return names
}

// Placeholder reports whether the whole tab is a "Coming Soon" page
func (t Tab) Placeholder() bool {
	switch t {
	case TabCalls, TabEmail, TabMessaging, TabForms, TabSettings:
		return true
	}
	return false
}

// UIState manages the user interface state:
// terminal dimensions, the active tab and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// activeTab is the tab currently shown
	activeTab Tab

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState on the Leads Input tab in NormalMode
func NewUIState() *UIState {
	return &UIState{
		activeTab: TabLeadsInput,
		mode:      NormalMode,
	}
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ActiveTab returns the tab currently shown
func (s *UIState) ActiveTab() Tab {
	return s.activeTab
}

// SetActiveTab switches to tab t
func (s *UIState) SetActiveTab(t Tab) {
	if t >= 0 && int(t) < len(Tabs) {
		s.activeTab = t
	}
}

// NextTab moves to the next tab, wrapping around
func (s *UIState) NextTab() {
	s.activeTab = Tab((int(s.activeTab) + 1) % len(Tabs))
}

// PrevTab moves to the previous tab, wrapping around
func (s *UIState) PrevTab() {
	s.activeTab = Tab((int(s.activeTab) - 1 + len(Tabs)) % len(Tabs))
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
