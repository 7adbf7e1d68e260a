package layers

const (
	// ModalMinWidth and ModalMaxWidth bound the cell editor, delete and export dialogs
	ModalMinWidth = 40
	ModalMaxWidth = 70

	ModalWidthDivisor = 2

	// ModalBorderPaddingWidth is border + horizontal padding
	ModalBorderPaddingWidth = 6
)
