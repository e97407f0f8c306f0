package ansi

// CharsetIndex selects one of the four character set slots (G0-G3).
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// Charset selects the character encoding variant for a charset slot.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// LineClearMode selects the range cleared by EL (Erase in Line).
type LineClearMode int

const (
	LineClearModeRight LineClearMode = iota
	LineClearModeLeft
	LineClearModeAll
)

// ClearMode selects the range cleared by ED (Erase in Display).
type ClearMode int

const (
	ClearModeBelow ClearMode = iota
	ClearModeAbove
	ClearModeAll
	ClearModeSaved
)

// TabulationClearMode selects which tab stops TBC clears.
type TabulationClearMode int

const (
	TabulationClearModeCurrent TabulationClearMode = iota
	TabulationClearModeAll
)

// CursorStyle identifies the DECSCUSR cursor rendering style.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// TerminalMode is a DECSET/DECRST-addressable mode (bare ANSI or DEC-private).
type TerminalMode int

const (
	TerminalModeCursorKeys TerminalMode = iota
	TerminalModeColumnMode
	TerminalModeInsert
	TerminalModeOrigin
	TerminalModeLineWrap
	TerminalModeBlinkingCursor
	TerminalModeLineFeedNewLine
	TerminalModeShowCursor
	TerminalModeReportMouseClicks
	TerminalModeReportCellMouseMotion
	TerminalModeReportAllMouseMotion
	TerminalModeReportFocusInOut
	TerminalModeUTF8Mouse
	TerminalModeSGRMouse
	TerminalModeAlternateScroll
	TerminalModeUrgencyHints
	TerminalModeSwapScreenAndSetRestoreCursor
	TerminalModeBracketedPaste
	TerminalModeKeypadApplication
	TerminalModeVi
	TerminalModeSixel
)

// KeyboardMode is a Kitty-protocol keyboard enhancement bit (CSI > u / < u / = u).
type KeyboardMode uint8

const (
	KeyboardModeNoMode KeyboardMode = 0

	KeyboardModeDisambiguateEscapeCodes KeyboardMode = 1 << (iota - 1)
	KeyboardModeReportEventTypes
	KeyboardModeReportAlternateKeys
	KeyboardModeReportAllKeysAsEscapeCodes
	KeyboardModeReportAssociatedText
)

// KeyboardModeBehavior describes how a pushed/set keyboard mode combines
// with the mode already in effect.
type KeyboardModeBehavior int

const (
	KeyboardModeBehaviorReplace KeyboardModeBehavior = iota
	KeyboardModeBehaviorUnion
	KeyboardModeBehaviorDifference
)

// ModifyOtherKeys mirrors xterm's CSI > 4 ; Pv m modifyOtherKeys setting.
type ModifyOtherKeys int

const (
	ModifyOtherKeysReset ModifyOtherKeys = iota
	ModifyOtherKeysNumeric
	ModifyOtherKeysNumericExceptWellDefined
)

// CharAttribute identifies one SGR (Select Graphic Rendition) parameter.
type CharAttribute int

const (
	CharAttributeReset CharAttribute = iota
	CharAttributeBold
	CharAttributeDim
	CharAttributeItalic
	CharAttributeUnderline
	CharAttributeDoubleUnderline
	CharAttributeCurlyUnderline
	CharAttributeDottedUnderline
	CharAttributeDashedUnderline
	CharAttributeBlinkSlow
	CharAttributeBlinkFast
	CharAttributeReverse
	CharAttributeHidden
	CharAttributeStrike
	CharAttributeCancelBold
	CharAttributeCancelBoldDim
	CharAttributeCancelItalic
	CharAttributeCancelUnderline
	CharAttributeCancelBlink
	CharAttributeCancelReverse
	CharAttributeCancelHidden
	CharAttributeCancelStrike
	CharAttributeForeground
	CharAttributeBackground
	CharAttributeUnderlineColor
)

// RGBColor is a 24-bit truecolor SGR color (38/48;2 or 38:2:...).
type RGBColor struct {
	R, G, B byte
}

// IndexedColor is a 256-color-palette SGR color (38/48;5).
type IndexedColor struct {
	Index byte
}

// NamedColor is one of the 16 standard SGR colors (30-37/90-97) or a
// semantic default (current foreground/background).
type NamedColor int

const (
	NamedColorBlack NamedColor = iota
	NamedColorRed
	NamedColorGreen
	NamedColorYellow
	NamedColorBlue
	NamedColorMagenta
	NamedColorCyan
	NamedColorWhite
	NamedColorBrightBlack
	NamedColorBrightRed
	NamedColorBrightGreen
	NamedColorBrightYellow
	NamedColorBrightBlue
	NamedColorBrightMagenta
	NamedColorBrightCyan
	NamedColorBrightWhite
	NamedColorForeground
	NamedColorBackground
)

// TerminalCharAttribute carries one decoded SGR parameter: which attribute
// it sets and, for color attributes, which color representation was used.
// At most one of RGBColor/IndexedColor/NamedColor is non-nil; all nil means
// "restore the default" for that attribute.
type TerminalCharAttribute struct {
	Attr         CharAttribute
	RGBColor     *RGBColor
	IndexedColor *IndexedColor
	NamedColor   *NamedColor
}

// Hyperlink is the payload of an OSC 8 hyperlink span.
type Hyperlink struct {
	ID  string
	URI string
}

// ShellIntegrationMark identifies an OSC 133 semantic-prompt mark.
type ShellIntegrationMark int

const (
	PromptStart ShellIntegrationMark = iota
	CommandStart
	CommandExecuted
	CommandFinished
)
