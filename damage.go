package term

// DamageRange is a contiguous span of dirty columns on one row.
type DamageRange struct {
	Row      int
	FromCol  int
	ToCol    int // inclusive
}

// DamagedLines returns, for each row with at least one dirty cell, the
// smallest [FromCol, ToCol] range covering every dirty cell on that row.
// Renderers should redraw exactly these spans rather than rescanning every
// cell every frame.
//
// If FullDamage() is true, the ranges below are not exhaustive — callers
// should redraw the whole viewport instead.
func (t *Terminal) DamagedLines() []DamageRange {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []DamageRange
	for row := 0; row < t.rows; row++ {
		from, to, any := -1, -1, false
		for col := 0; col < t.cols; col++ {
			cell := t.activeBuffer.Cell(row, col)
			if cell == nil || !cell.IsDirty() {
				continue
			}
			if !any {
				from = col
				any = true
			}
			to = col
		}
		if any {
			out = append(out, DamageRange{Row: row, FromCol: from, ToCol: to})
		}
	}
	return out
}

// FullDamage reports whether the last screen-affecting operation (resize,
// full erase, alternate-screen swap) invalidated the entire viewport,
// making per-line damage ranges not worth computing.
func (t *Terminal) FullDamage() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fullDamage
}

// ClearDamage clears both the per-cell dirty bits and the full-damage flag.
// Call once per render after consuming DamagedLines/FullDamage.
func (t *Terminal) ClearDamage() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.ClearAllDirty()
	t.fullDamage = false
}

// markFullDamageLocked records that the whole viewport must be redrawn.
// Caller must hold the write lock.
func (t *Terminal) markFullDamageLocked() {
	t.fullDamage = true
}

// Apply feeds one batch of raw PTY bytes through the decoder and reports
// whether anything changed that a renderer should redraw for. It
// satisfies eventloop.Sink so a Terminal can sit directly behind an
// event loop's read goroutine.
func (t *Terminal) Apply(data []byte) bool {
	t.Write(data)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.fullDamage {
		return true
	}
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			if cell := t.activeBuffer.Cell(row, col); cell != nil && cell.IsDirty() {
				return true
			}
		}
	}
	return false
}
