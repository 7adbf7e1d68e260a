package components

const (
	// MinColumnWidth and MaxColumnWidth bound one lead table column, padding included
	MinColumnWidth = 8
	MaxColumnWidth = 28

	// IDColumnWidth is the width of the fixed id column
	IDColumnWidth = 6

	// tableChromeLines is the header row plus its rule
	tableChromeLines = 2

	// Dialog footer strings
	FooterEditCell = "Enter: save  Esc: cancel"
	FooterConfirm  = "y: delete  n/Esc: cancel"
	FooterExport   = "Enter: export  Esc: cancel"
)
