package term

import "testing"

func TestSearchConfirmedFindsMatches(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("foo bar\r\nbaz foo")

	matches, err := term.SearchConfirmed("foo", DirectionForward)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Start != (Point{Row: 0, Col: 0}) {
		t.Errorf("expected first match at (0,0), got %+v", matches[0].Start)
	}
	if matches[1].Start != (Point{Row: 1, Col: 4}) {
		t.Errorf("expected second match at (1,4), got %+v", matches[1].Start)
	}
}

func TestSearchConfirmedBackwardReversesOrder(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("foo bar\r\nbaz foo")

	matches, err := term.SearchConfirmed("foo", DirectionBackward)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Start.Row != 1 {
		t.Errorf("expected backward search to yield the later match first, got row %d", matches[0].Start.Row)
	}
}

func TestSearchConfirmedInvalidPattern(t *testing.T) {
	term := New(WithSize(24, 80))

	_, err := term.SearchConfirmed("(unclosed", DirectionForward)
	if err == nil {
		t.Fatal("expected error for invalid regex pattern")
	}
}

func TestSearchConfirmedNoMatches(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("hello")

	matches, err := term.SearchConfirmed("xyz", DirectionForward)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected 0 matches, got %d", len(matches))
	}
}

func TestSearchIncrementalBoundedByMaxSearchLines(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("needle")

	matches, err := term.SearchIncremental("needle", DirectionForward)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("expected 1 match, got %d", len(matches))
	}
}
