package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tabs
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`

	// Leads table
	ToggleEdit  string `yaml:"toggle_edit"`
	EditField   string `yaml:"edit_field"`
	CycleStatus string `yaml:"cycle_status"`
	DeleteLead  string `yaml:"delete_lead"`
	Export      string `yaml:"export"`
	Refresh     string `yaml:"refresh"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevDay    string `yaml:"prev_day"`
	NextDay    string `yaml:"next_day"`
	Today      string `yaml:"today"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextTab: "ctrl+n",
		PrevTab: "ctrl+p",

		ToggleEdit:  "e",
		EditField:   "enter",
		CycleStatus: "s",
		DeleteLead:  "d",
		Export:      "x",
		Refresh:     "r",

		SaveForm: "ctrl+s",

		PrevRow:    "k",
		NextRow:    "j",
		PrevColumn: "h",
		NextColumn: "l",
		PrevDay:    "[",
		NextDay:    "]",
		Today:      "t",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	pairs := []struct {
		dst *string
		def string
	}{
		{&k.NextTab, d.NextTab},
		{&k.PrevTab, d.PrevTab},
		{&k.ToggleEdit, d.ToggleEdit},
		{&k.EditField, d.EditField},
		{&k.CycleStatus, d.CycleStatus},
		{&k.DeleteLead, d.DeleteLead},
		{&k.Export, d.Export},
		{&k.Refresh, d.Refresh},
		{&k.SaveForm, d.SaveForm},
		{&k.PrevRow, d.PrevRow},
		{&k.NextRow, d.NextRow},
		{&k.PrevColumn, d.PrevColumn},
		{&k.NextColumn, d.NextColumn},
		{&k.PrevDay, d.PrevDay},
		{&k.NextDay, d.NextDay},
		{&k.Today, d.Today},
		{&k.Quit, d.Quit},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.def
		}
	}
}
