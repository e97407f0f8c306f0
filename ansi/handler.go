package ansi

import "image/color"

// Handler is the full capability set a terminal implementation exposes to
// Decoder. Decoder never touches terminal state directly; every escape
// sequence it recognizes resolves to exactly one Handler call, so a mock
// Handler can drive and assert against the parser in isolation.
type Handler interface {
	// Printing and cursor movement.
	Input(r rune)
	Backspace()
	CarriageReturn()
	LineFeed()
	Tab(n int)
	Goto(row, col int)
	GotoCol(col int)
	GotoLine(row int)
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	MoveUpCr(n int)
	MoveDownCr(n int)
	MoveForwardTabs(n int)
	MoveBackwardTabs(n int)

	// Editing.
	InsertBlank(n int)
	InsertBlankLines(n int)
	DeleteChars(n int)
	DeleteLines(n int)
	EraseChars(n int)
	ClearLine(mode LineClearMode)
	ClearScreen(mode ClearMode)
	Decaln()
	Substitute()

	// Scrolling and regions.
	ScrollUp(n int)
	ScrollDown(n int)
	SetScrollingRegion(top, bottom int)
	ReverseIndex()

	// Tabs.
	HorizontalTabSet()
	ClearTabs(mode TabulationClearMode)

	// Cursor save/restore.
	SaveCursorPosition()
	RestoreCursorPosition()
	ResetState()

	// Charsets.
	ConfigureCharset(index CharsetIndex, charset Charset)
	SetActiveCharset(n int)

	// Modes.
	SetMode(mode TerminalMode)
	UnsetMode(mode TerminalMode)
	SetKeypadApplicationMode()
	UnsetKeypadApplicationMode()
	SetModifyOtherKeys(modify ModifyOtherKeys)
	ReportModifyOtherKeys()
	PushKeyboardMode(mode KeyboardMode)
	PopKeyboardMode(n int)
	SetKeyboardMode(mode KeyboardMode, behavior KeyboardModeBehavior)
	ReportKeyboardMode()

	// Attributes and color.
	SetTerminalCharAttribute(attr TerminalCharAttribute)
	SetColor(index int, c color.Color)
	ResetColor(i int)
	SetDynamicColor(prefix string, index int, terminator string)
	SetCursorStyle(style CursorStyle)

	// Title and working directory.
	SetTitle(title string)
	PushTitle()
	PopTitle()
	SetWorkingDirectory(uri string)

	// Hyperlinks and clipboard.
	SetHyperlink(hyperlink *Hyperlink)
	ClipboardLoad(clipboard byte, terminator string)
	ClipboardStore(clipboard byte, data []byte)

	// Device/status queries.
	DeviceStatus(n int)
	IdentifyTerminal(b byte)
	TextAreaSizeChars()
	TextAreaSizePixels()
	CellSizePixels()

	// Bell.
	Bell()

	// String-terminated data sinks (APC/PM/SOS).
	ApplicationCommandReceived(data []byte)
	PrivacyMessageReceived(data []byte)
	StartOfStringReceived(data []byte)

	// Sixel graphics.
	SixelReceived(params [][]uint16, data []byte)

	// Shell integration (OSC 133 semantic prompt marks).
	ShellIntegrationMark(mark ShellIntegrationMark, exitCode int)
}
