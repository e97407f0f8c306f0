package term

import "unicode"

// SelectionKind identifies the shape a selection spans.
type SelectionKind int

const (
	// SelectionSimple selects a contiguous stream of text, wrapping across
	// rows between the start and end points.
	SelectionSimple SelectionKind = iota
	// SelectionBlock selects a rectangular span of columns across every
	// row between the start and end points.
	SelectionBlock
	// SelectionSemantic snaps both endpoints outward to the nearest word
	// boundaries before behaving like SelectionSimple.
	SelectionSemantic
	// SelectionLines selects every column of every row between the start
	// and end points.
	SelectionLines
)

// AbsoluteSelection is a selection anchored in absolute buffer coordinates,
// so it stays correct as new lines arrive and old ones scroll into
// scrollback.
type AbsoluteSelection struct {
	Start  Point
	End    Point
	Kind   SelectionKind
	Active bool
}

// SetAbsoluteSelection replaces the active selection with one anchored at
// absolute coordinates. Start and End are normalized so Start is always
// the earlier point. For SelectionSemantic, both endpoints are expanded to
// the enclosing word.
func (t *Terminal) SetAbsoluteSelection(start, end Point, kind SelectionKind) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if end.Before(start) {
		start, end = end, start
	}

	if kind == SelectionSemantic {
		start = t.wordStartLocked(start)
		end = t.wordEndLocked(end)
	}

	t.absSelection = AbsoluteSelection{Start: start, End: end, Kind: kind, Active: true}
}

// ClearAbsoluteSelection deactivates the absolute-coordinate selection.
func (t *Terminal) ClearAbsoluteSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.absSelection.Active = false
}

// GetAbsoluteSelection returns the current absolute-coordinate selection state.
func (t *Terminal) GetAbsoluteSelection() AbsoluteSelection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.absSelection
}

// IsSelectedAbsolute reports whether the cell at an absolute point falls
// within the active absolute-coordinate selection.
func (t *Terminal) IsSelectedAbsolute(p Point) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isSelectedAbsoluteLocked(p)
}

func (t *Terminal) isSelectedAbsoluteLocked(p Point) bool {
	sel := t.absSelection
	if !sel.Active {
		return false
	}
	if p.Row < sel.Start.Row || p.Row > sel.End.Row {
		return false
	}

	switch sel.Kind {
	case SelectionBlock:
		lo, hi := sel.Start.Col, sel.End.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		return p.Col >= lo && p.Col <= hi
	case SelectionLines:
		return true
	default: // SelectionSimple, SelectionSemantic
		if p.Row == sel.Start.Row && p.Col < sel.Start.Col {
			return false
		}
		if p.Row == sel.End.Row && p.Col > sel.End.Col {
			return false
		}
		return true
	}
}

// GetAbsoluteSelectedText extracts the text under the active
// absolute-coordinate selection, reading through scrollback as needed.
func (t *Terminal) GetAbsoluteSelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sel := t.absSelection
	if !sel.Active {
		return ""
	}

	var out []rune
	for row := sel.Start.Row; row <= sel.End.Row; row++ {
		lineLen := t.lineLengthLocked(row)

		startCol, endCol := 0, lineLen
		switch sel.Kind {
		case SelectionBlock:
			startCol, endCol = sel.Start.Col, sel.End.Col+1
			if startCol > endCol {
				startCol, endCol = endCol, startCol
			}
		case SelectionLines:
			// full row
		default:
			if row == sel.Start.Row {
				startCol = sel.Start.Col
			}
			if row == sel.End.Row {
				endCol = sel.End.Col + 1
			}
		}

		for col := startCol; col < endCol; col++ {
			cell := t.cellAtAbsolute(Point{Row: row, Col: col})
			if cell == nil {
				continue
			}
			if cell.IsWideSpacer() {
				continue
			}
			if cell.Char == 0 {
				out = append(out, ' ')
			} else {
				out = append(out, cell.Char)
				out = append(out, cell.Combining...)
			}
		}
		// A row that soft-wraps into the next one continues the same line.
		if row < sel.End.Row && (sel.Kind == SelectionBlock || !t.rowWrappedLocked(row)) {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// lineLengthLocked returns the column width available at an absolute row
// (always t.cols, since every stored row — scrollback or grid — is padded
// to the buffer's width).
func (t *Terminal) lineLengthLocked(row int) int {
	return t.cols
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordStartLocked walks p left across word characters to the start of the
// enclosing word (caller must hold the lock). Stepping across a wide
// character's spacer column lands on the spacer, not the wide cell itself,
// so a spacer is resolved back one more column to the wide cell it belongs
// to before the word-rune check runs.
func (t *Terminal) wordStartLocked(p Point) Point {
	for {
		cell := t.cellAtAbsolute(p)
		if cell == nil || !isWordRune(cell.Char) {
			break
		}
		if p.Col == 0 {
			break
		}
		prev := Point{Row: p.Row, Col: p.Col - 1}
		prevCell := t.cellAtAbsolute(prev)
		if prevCell != nil && prevCell.IsWideSpacer() && prev.Col > 0 {
			prev.Col--
			prevCell = t.cellAtAbsolute(prev)
		}
		if prevCell == nil || !isWordRune(prevCell.Char) {
			break
		}
		p = prev
	}
	return p
}

// wordEndLocked walks p right across word characters to the end of the
// enclosing word (caller must hold the lock), advancing by cellDisplayWidth
// so a wide character's spacer column is skipped rather than treated as a
// word-boundary break.
func (t *Terminal) wordEndLocked(p Point) Point {
	for p.Col < t.cols-1 {
		cell := t.cellAtAbsolute(p)
		if cell == nil || !isWordRune(cell.Char) {
			break
		}
		next := Point{Row: p.Row, Col: p.Col + cellDisplayWidth(cell)}
		if next.Col <= p.Col || next.Col >= t.cols {
			break
		}
		nextCell := t.cellAtAbsolute(next)
		if nextCell == nil || !isWordRune(nextCell.Char) {
			break
		}
		p = next
	}
	return p
}
