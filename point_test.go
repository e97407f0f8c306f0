package term

import "testing"

func TestAddPointCarriesRowOnColumnOverflow(t *testing.T) {
	term := New(WithSize(5, 10))

	got := term.AddPoint(Point{Row: 2, Col: 8}, 5, BoundaryNone)
	want := Point{Row: 3, Col: 3}
	if got != want {
		t.Errorf("AddPoint = %+v, want %+v", got, want)
	}
}

func TestAddPointNegativeDeltaBorrowsRow(t *testing.T) {
	term := New(WithSize(5, 10))

	got := term.AddPoint(Point{Row: 2, Col: 1}, -3, BoundaryNone)
	want := Point{Row: 1, Col: 8}
	if got != want {
		t.Errorf("AddPoint = %+v, want %+v", got, want)
	}
}

func TestAddPointBoundaryClampPinsToGrid(t *testing.T) {
	term := New(WithSize(5, 10))

	// -1 from (0,0) carries to (-1,9); the row is pinned to 0, the column kept.
	got := term.AddPoint(Point{Row: 0, Col: 0}, -1, BoundaryClamp)
	if got != (Point{Row: 0, Col: 9}) {
		t.Errorf("AddPoint clamp low = %+v, want {0 9}", got)
	}

	got = term.AddPoint(Point{Row: 4, Col: 9}, 100, BoundaryClamp)
	want := Point{Row: 4, Col: 9}
	if got != want {
		t.Errorf("AddPoint clamp high = %+v, want %+v", got, want)
	}
}

func TestAddPointBoundaryGridWrapsWithoutScrollback(t *testing.T) {
	term := New(WithSize(3, 10), WithScrollback(NewMemoryScrollback(100)))

	for i := 0; i < 5; i++ {
		term.WriteString("line\r\n")
	}
	if term.primaryBuffer.ScrollbackLen() == 0 {
		t.Fatal("expected scrollback to be populated by the writes above")
	}

	start := term.primaryBuffer.ScrollbackLen()
	got := term.AddPoint(Point{Row: start, Col: 0}, -term.cols, BoundaryGrid)
	if got.Row < start || got.Row > term.maxAbsoluteRow() {
		t.Errorf("AddPoint grid wrap escaped the visible grid: %+v (scrollback starts at %d)", got, start)
	}
}

func TestSubPointIsAddPointNegated(t *testing.T) {
	term := New(WithSize(5, 10))

	p := Point{Row: 2, Col: 5}
	if got, want := term.SubPoint(p, 3, BoundaryNone), term.AddPoint(p, -3, BoundaryNone); got != want {
		t.Errorf("SubPoint = %+v, want %+v", got, want)
	}
}
