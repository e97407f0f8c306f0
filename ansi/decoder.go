package ansi

import (
	"encoding/base64"
	"image/color"
	"strconv"
	"strings"
)

// Decoder is the semantic dispatch layer sitting between Parser and a
// Handler. Parser calls Decoder's dispatch* methods once per complete
// escape sequence; Decoder resolves parameters into typed Handler calls.
type Decoder struct {
	handler Handler
	parser  *Parser
}

// NewDecoder returns a Decoder that dispatches to h, with its own Parser.
func NewDecoder(h Handler) *Decoder {
	return &Decoder{handler: h, parser: NewParser()}
}

// Write feeds data through the Decoder's Parser, dispatching every
// complete escape sequence to the Handler. It always consumes the full
// buffer and never returns an error; the signature matches io.Writer so a
// Decoder can sit directly behind Terminal.Write.
func (d *Decoder) Write(data []byte) (int, error) {
	d.parser.AdvanceBytes(d, data)
	return len(data), nil
}

func p0(params [][]int64, i int, def int64) int64 {
	if i >= len(params) || len(params[i]) == 0 || params[i][0] == 0 {
		return def
	}
	return params[i][0]
}

func pdef(params [][]int64, i int, def int64) int64 {
	if i >= len(params) || len(params[i]) == 0 {
		return def
	}
	return params[i][0]
}

func privatePrefix(intermediates []byte) byte {
	for _, b := range intermediates {
		switch b {
		case '?', '>', '=', '<':
			return b
		}
	}
	return 0
}

// dispatchEsc handles a two-character (or intermediate-prefixed) ESC
// sequence, final byte b.
func (d *Decoder) dispatchEsc(b byte, intermediates []byte) {
	switch {
	case len(intermediates) == 0:
		switch b {
		case 'D':
			d.handler.LineFeed()
		case 'E':
			d.handler.CarriageReturn()
			d.handler.LineFeed()
		case 'H':
			d.handler.HorizontalTabSet()
		case 'M':
			d.handler.ReverseIndex()
		case 'Z':
			d.handler.IdentifyTerminal(0)
		case '7':
			d.handler.SaveCursorPosition()
		case '8':
			d.handler.RestoreCursorPosition()
		case 'c':
			d.handler.ResetState()
		case '=':
			d.handler.SetKeypadApplicationMode()
		case '>':
			d.handler.UnsetKeypadApplicationMode()
		}
	case intermediates[0] == '#' && b == '8':
		d.handler.Decaln()
	case intermediates[0] == '(':
		d.handler.ConfigureCharset(CharsetIndexG0, charsetFromFinal(b))
	case intermediates[0] == ')':
		d.handler.ConfigureCharset(CharsetIndexG1, charsetFromFinal(b))
	case intermediates[0] == '*':
		d.handler.ConfigureCharset(CharsetIndexG2, charsetFromFinal(b))
	case intermediates[0] == '+':
		d.handler.ConfigureCharset(CharsetIndexG3, charsetFromFinal(b))
	}
}

func charsetFromFinal(b byte) Charset {
	if b == '0' {
		return CharsetLineDrawing
	}
	return CharsetASCII
}

// dispatchCsi handles a complete CSI sequence: final byte b, the
// collected parameters (each possibly with sub-parameters from ':'
// separators), and intermediate bytes (including any private-mode
// prefix byte).
func (d *Decoder) dispatchCsi(b byte, params [][]int64, intermediates []byte) {
	priv := privatePrefix(intermediates)
	h := d.handler

	switch b {
	case 'A':
		h.MoveUp(int(p0(params, 0, 1)))
	case 'B', 'e':
		h.MoveDown(int(p0(params, 0, 1)))
	case 'C', 'a':
		h.MoveForward(int(p0(params, 0, 1)))
	case 'D':
		h.MoveBackward(int(p0(params, 0, 1)))
	case 'E':
		h.MoveDownCr(int(p0(params, 0, 1)))
	case 'F':
		h.MoveUpCr(int(p0(params, 0, 1)))
	case 'G', '`':
		h.GotoCol(int(p0(params, 0, 1)) - 1)
	case 'd':
		h.GotoLine(int(p0(params, 0, 1)) - 1)
	case 'H', 'f':
		h.Goto(int(p0(params, 0, 1))-1, int(p0(params, 1, 1))-1)
	case 'I':
		h.MoveForwardTabs(int(p0(params, 0, 1)))
	case 'Z':
		h.MoveBackwardTabs(int(p0(params, 0, 1)))
	case 'J':
		h.ClearScreen(ClearMode(p0(params, 0, 0)))
	case 'K':
		h.ClearLine(LineClearMode(p0(params, 0, 0)))
	case 'L':
		h.InsertBlankLines(int(p0(params, 0, 1)))
	case 'M':
		h.DeleteLines(int(p0(params, 0, 1)))
	case 'P':
		h.DeleteChars(int(p0(params, 0, 1)))
	case '@':
		h.InsertBlank(int(p0(params, 0, 1)))
	case 'X':
		h.EraseChars(int(p0(params, 0, 1)))
	case 'S':
		h.ScrollUp(int(p0(params, 0, 1)))
	case 'T':
		h.ScrollDown(int(p0(params, 0, 1)))
	case 'g':
		h.ClearTabs(TabulationClearMode(p0(params, 0, 0)))
	case 'r':
		h.SetScrollingRegion(int(p0(params, 0, 1)), int(p0(params, 1, 0)))
	case 'n':
		if priv == '?' {
			// DEC-private status reports not modeled beyond DSR 6.
			h.DeviceStatus(int(p0(params, 0, 0)))
		} else {
			h.DeviceStatus(int(p0(params, 0, 0)))
		}
	case 'c':
		if priv == '>' {
			h.IdentifyTerminal('>')
		} else {
			h.IdentifyTerminal(0)
		}
	case 'h':
		d.dispatchSetMode(priv, params, true)
	case 'l':
		d.dispatchSetMode(priv, params, false)
	case 'm':
		if priv == '>' {
			d.dispatchModifyOtherKeysReport()
			return
		}
		d.dispatchSGR(params)
	case 'q':
		if len(intermediates) > 0 && intermediates[len(intermediates)-1] == ' ' {
			h.SetCursorStyle(CursorStyle(p0(params, 0, 0)))
		}
	case 's':
		h.SaveCursorPosition()
	case 'u':
		switch priv {
		case '>':
			h.PushKeyboardMode(KeyboardMode(p0(params, 0, 0)))
		case '<':
			h.PopKeyboardMode(int(p0(params, 0, 1)))
		case '=':
			behavior := KeyboardModeBehaviorReplace
			switch p0(params, 1, 1) {
			case 2:
				behavior = KeyboardModeBehaviorUnion
			case 3:
				behavior = KeyboardModeBehaviorDifference
			}
			h.SetKeyboardMode(KeyboardMode(p0(params, 0, 0)), behavior)
		case '?':
			h.ReportKeyboardMode()
		default:
			h.RestoreCursorPosition()
		}
	}
}

func (d *Decoder) dispatchModifyOtherKeysReport() {
	d.handler.ReportModifyOtherKeys()
}

var decModeByNumber = map[int64]TerminalMode{
	1:    TerminalModeCursorKeys,
	3:    TerminalModeColumnMode,
	6:    TerminalModeOrigin,
	7:    TerminalModeLineWrap,
	12:   TerminalModeBlinkingCursor,
	25:   TerminalModeShowCursor,
	1000: TerminalModeReportMouseClicks,
	1002: TerminalModeReportCellMouseMotion,
	1003: TerminalModeReportAllMouseMotion,
	1004: TerminalModeReportFocusInOut,
	1005: TerminalModeUTF8Mouse,
	1006: TerminalModeSGRMouse,
	1007: TerminalModeAlternateScroll,
	1042: TerminalModeUrgencyHints,
	1049: TerminalModeSwapScreenAndSetRestoreCursor,
	2004: TerminalModeBracketedPaste,
	9001: TerminalModeVi,
}

var ansiModeByNumber = map[int64]TerminalMode{
	4:  TerminalModeInsert,
	20: TerminalModeLineFeedNewLine,
}

func (d *Decoder) dispatchSetMode(priv byte, params [][]int64, set bool) {
	table := ansiModeByNumber
	if priv == '?' {
		table = decModeByNumber
	}
	for i := range params {
		n := pdef(params, i, -1)
		m, ok := table[n]
		if !ok {
			continue
		}
		if set {
			d.handler.SetMode(m)
		} else {
			d.handler.UnsetMode(m)
		}
	}
}

// dispatchSGR decodes CSI m (Select Graphic Rendition) parameters,
// including ':'-separated extended color sub-parameters, into one
// TerminalCharAttribute call per parameter.
func (d *Decoder) dispatchSGR(params [][]int64) {
	if len(params) == 0 {
		d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		return
	}
	for i := 0; i < len(params); i++ {
		n := pdef(params, i, 0)
		switch {
		case n == 0:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		case n == 1:
			d.emit(CharAttributeBold, nil, nil, nil)
		case n == 2:
			d.emit(CharAttributeDim, nil, nil, nil)
		case n == 3:
			d.emit(CharAttributeItalic, nil, nil, nil)
		case n == 4:
			d.emitUnderline(params[i])
		case n == 5:
			d.emit(CharAttributeBlinkSlow, nil, nil, nil)
		case n == 6:
			d.emit(CharAttributeBlinkFast, nil, nil, nil)
		case n == 7:
			d.emit(CharAttributeReverse, nil, nil, nil)
		case n == 8:
			d.emit(CharAttributeHidden, nil, nil, nil)
		case n == 9:
			d.emit(CharAttributeStrike, nil, nil, nil)
		case n == 21:
			d.emit(CharAttributeDoubleUnderline, nil, nil, nil)
		case n == 22:
			d.emit(CharAttributeCancelBoldDim, nil, nil, nil)
		case n == 23:
			d.emit(CharAttributeCancelItalic, nil, nil, nil)
		case n == 24:
			d.emit(CharAttributeCancelUnderline, nil, nil, nil)
		case n == 25:
			d.emit(CharAttributeCancelBlink, nil, nil, nil)
		case n == 27:
			d.emit(CharAttributeCancelReverse, nil, nil, nil)
		case n == 28:
			d.emit(CharAttributeCancelHidden, nil, nil, nil)
		case n == 29:
			d.emit(CharAttributeCancelStrike, nil, nil, nil)
		case n >= 30 && n <= 37:
			nc := NamedColor(n - 30)
			d.emit(CharAttributeForeground, nil, nil, &nc)
		case n == 38:
			consumed := d.emitExtendedColor(CharAttributeForeground, params, i)
			i += consumed
		case n == 39:
			nc := NamedColorForeground
			d.emit(CharAttributeForeground, nil, nil, &nc)
		case n >= 40 && n <= 47:
			nc := NamedColor(n - 40)
			d.emit(CharAttributeBackground, nil, nil, &nc)
		case n == 48:
			consumed := d.emitExtendedColor(CharAttributeBackground, params, i)
			i += consumed
		case n == 49:
			nc := NamedColorBackground
			d.emit(CharAttributeBackground, nil, nil, &nc)
		case n == 58:
			consumed := d.emitExtendedColor(CharAttributeUnderlineColor, params, i)
			i += consumed
		case n == 59:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeUnderlineColor})
		case n >= 90 && n <= 97:
			nc := NamedColor(n - 90 + 8)
			d.emit(CharAttributeForeground, nil, nil, &nc)
		case n >= 100 && n <= 107:
			nc := NamedColor(n - 100 + 8)
			d.emit(CharAttributeBackground, nil, nil, &nc)
		}
	}
}

func (d *Decoder) emitUnderline(sub []int64) {
	if len(sub) < 2 {
		d.emit(CharAttributeUnderline, nil, nil, nil)
		return
	}
	switch sub[1] {
	case 0:
		d.emit(CharAttributeCancelUnderline, nil, nil, nil)
	case 2:
		d.emit(CharAttributeDoubleUnderline, nil, nil, nil)
	case 3:
		d.emit(CharAttributeCurlyUnderline, nil, nil, nil)
	case 4:
		d.emit(CharAttributeDottedUnderline, nil, nil, nil)
	case 5:
		d.emit(CharAttributeDashedUnderline, nil, nil, nil)
	default:
		d.emit(CharAttributeUnderline, nil, nil, nil)
	}
}

// emitExtendedColor decodes the 38/48/58 extended color forms, either
// ':'-delimited sub-parameters on a single top-level param (38:2:r:g:b,
// 38:2:cs:r:g:b with an optional colorspace id, 38:5:idx) or classic
// ';'-delimited top-level params (38;2;r;g;b, 38;5;idx). It returns how
// many EXTRA top-level params it consumed.
func (d *Decoder) emitExtendedColor(attr CharAttribute, params [][]int64, i int) int {
	sub := params[i]
	if len(sub) >= 2 {
		switch sub[1] {
		case 2:
			if len(sub) >= 6 {
				// 38:2:cs:r:g:b — the colorspace slot (often empty) is skipped.
				rgb := RGBColor{R: byte(sub[3]), G: byte(sub[4]), B: byte(sub[5])}
				d.emit(attr, &rgb, nil, nil)
				return 0
			}
			if len(sub) >= 5 {
				rgb := RGBColor{R: byte(sub[2]), G: byte(sub[3]), B: byte(sub[4])}
				d.emit(attr, &rgb, nil, nil)
				return 0
			}
		case 5:
			if len(sub) >= 3 {
				idx := IndexedColor{Index: byte(sub[2])}
				d.emit(attr, nil, &idx, nil)
				return 0
			}
		}
	}
	// Classic semicolon-delimited form spread across subsequent top-level params.
	if i+1 < len(params) {
		mode := pdef(params, i+1, 0)
		switch mode {
		case 2:
			if i+4 < len(params) {
				rgb := RGBColor{
					R: byte(pdef(params, i+2, 0)),
					G: byte(pdef(params, i+3, 0)),
					B: byte(pdef(params, i+4, 0)),
				}
				d.emit(attr, &rgb, nil, nil)
				return 4
			}
		case 5:
			if i+2 < len(params) {
				idx := IndexedColor{Index: byte(pdef(params, i+2, 0))}
				d.emit(attr, nil, &idx, nil)
				return 2
			}
		}
	}
	return 0
}

func (d *Decoder) emit(attr CharAttribute, rgb *RGBColor, idx *IndexedColor, named *NamedColor) {
	d.handler.SetTerminalCharAttribute(TerminalCharAttribute{
		Attr:         attr,
		RGBColor:     rgb,
		IndexedColor: idx,
		NamedColor:   named,
	})
}

// dispatchDcs handles a complete DCS sequence once its string payload is
// terminated by ST or ESC.
func (d *Decoder) dispatchDcs(final byte, params [][]int64, intermediates []byte, data []byte) {
	if final == 'q' {
		uparams := make([][]uint16, len(params))
		for i, sub := range params {
			u := make([]uint16, len(sub))
			for j, v := range sub {
				u[j] = uint16(v)
			}
			uparams[i] = u
		}
		d.handler.SixelReceived(uparams, data)
	}
}

// dispatchOsc decodes an OSC payload ("Ps;Pt...") into the appropriate
// Handler call.
func (d *Decoder) dispatchOsc(data []byte) {
	s := string(data)
	semi := strings.IndexByte(s, ';')
	var code string
	var rest string
	if semi < 0 {
		code = s
	} else {
		code = s[:semi]
		rest = s[semi+1:]
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return
	}
	switch n {
	case 0, 2:
		d.handler.SetTitle(rest)
	case 1:
		// Icon name only: treated as a title update by this terminal.
		d.handler.SetTitle(rest)
	case 4:
		d.dispatchPaletteColor(rest)
	case 10, 11, 12, 17, 19:
		d.dispatchDynamicColor(n, rest)
	case 7:
		d.handler.SetWorkingDirectory(rest)
	case 8:
		d.dispatchHyperlink(rest)
	case 9:
		// Growl-style notification, not modeled; ignored.
	case 52:
		d.dispatchClipboard(rest)
	case 104:
		d.dispatchResetColor(rest)
	case 133:
		d.dispatchShellIntegration(rest)
	}
}

// dynamicColorSlot maps an OSC dynamic-color code to the terminal's
// named-color palette index, matching the NamedColorForeground.. block
// the term package reserves above the 256-entry indexed palette.
var dynamicColorSlot = map[int]int{
	10: 256, // foreground
	11: 257, // background
	12: 258, // cursor
	17: 259, // highlight background
	19: 260, // highlight foreground
}

func (d *Decoder) dispatchDynamicColor(code int, rest string) {
	idx, ok := dynamicColorSlot[code]
	if !ok {
		return
	}
	if rest == "?" {
		d.handler.SetDynamicColor(strconv.Itoa(code), idx, "\x07")
		return
	}
	c, ok := parseColorSpec(rest)
	if !ok {
		return
	}
	d.handler.SetColor(idx, c)
}

func (d *Decoder) dispatchPaletteColor(rest string) {
	fields := strings.SplitN(rest, ";", 2)
	if len(fields) != 2 {
		return
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}
	if fields[1] == "?" {
		d.handler.SetDynamicColor("4", idx, "\x07")
		return
	}
	c, ok := parseColorSpec(fields[1])
	if !ok {
		return
	}
	d.handler.SetColor(idx, c)
}

// parseColorSpec parses the XParseColor-style "rgb:RR/GG/BB" (and the
// shorter "#RRGGBB") forms used by OSC 4/10/11/12 color assignments.
func parseColorSpec(spec string) (color.Color, bool) {
	if strings.HasPrefix(spec, "rgb:") {
		parts := strings.Split(strings.TrimPrefix(spec, "rgb:"), "/")
		if len(parts) != 3 {
			return nil, false
		}
		r, ok1 := parseHexComponent(parts[0])
		g, ok2 := parseHexComponent(parts[1])
		b, ok3 := parseHexComponent(parts[2])
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	if strings.HasPrefix(spec, "#") && len(spec) == 7 {
		v, err := strconv.ParseUint(spec[1:], 16, 32)
		if err != nil {
			return nil, false
		}
		return color.RGBA{R: byte(v >> 16), G: byte(v >> 8), B: byte(v), A: 0xff}, true
	}
	return nil, false
}

func parseHexComponent(s string) (byte, bool) {
	if len(s) > 2 {
		s = s[:2]
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

func (d *Decoder) dispatchHyperlink(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) != 2 {
		if rest == "" {
			d.handler.SetHyperlink(nil)
		}
		return
	}
	id := ""
	for _, kv := range strings.Split(parts[0], ":") {
		if strings.HasPrefix(kv, "id=") {
			id = strings.TrimPrefix(kv, "id=")
		}
	}
	if parts[1] == "" {
		d.handler.SetHyperlink(nil)
		return
	}
	d.handler.SetHyperlink(&Hyperlink{ID: id, URI: parts[1]})
}

func (d *Decoder) dispatchClipboard(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) != 2 {
		return
	}
	clipboard := byte('c')
	if len(parts[0]) > 0 {
		clipboard = parts[0][0]
	}
	if parts[1] == "?" {
		d.handler.ClipboardLoad(clipboard, "\x07")
		return
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return
	}
	d.handler.ClipboardStore(clipboard, data)
}

func (d *Decoder) dispatchResetColor(rest string) {
	if rest == "" {
		d.handler.ResetColor(-1)
		return
	}
	for _, f := range strings.Split(rest, ";") {
		idx, err := strconv.Atoi(f)
		if err == nil {
			d.handler.ResetColor(idx)
		}
	}
}

func (d *Decoder) dispatchShellIntegration(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) == 0 {
		return
	}
	switch parts[0] {
	case "A":
		d.handler.ShellIntegrationMark(PromptStart, -1)
	case "B":
		d.handler.ShellIntegrationMark(CommandStart, -1)
	case "C":
		d.handler.ShellIntegrationMark(CommandExecuted, -1)
	case "D":
		exitCode := -1
		if len(parts) == 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				exitCode = n
			}
		}
		d.handler.ShellIntegrationMark(CommandFinished, exitCode)
	}
}

// dispatchStringTerminated handles a completed SOS/PM/APC string, kind
// being the introducer byte ('X', '^', or '_').
func (d *Decoder) dispatchStringTerminated(kind byte, data []byte) {
	switch kind {
	case '_':
		d.handler.ApplicationCommandReceived(data)
	case '^':
		d.handler.PrivacyMessageReceived(data)
	case 'X':
		d.handler.StartOfStringReceived(data)
	}
}

