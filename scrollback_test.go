package term

import "testing"

func TestMemoryScrollbackPushAndLen(t *testing.T) {
	sb := NewMemoryScrollback(3)

	sb.Push([]Cell{{Char: 'a'}})
	sb.Push([]Cell{{Char: 'b'}})

	if sb.Len() != 2 {
		t.Errorf("expected len 2, got %d", sb.Len())
	}
}

func TestMemoryScrollbackEvictsOldest(t *testing.T) {
	sb := NewMemoryScrollback(2)

	sb.Push([]Cell{{Char: 'a'}})
	sb.Push([]Cell{{Char: 'b'}})
	sb.Push([]Cell{{Char: 'c'}})

	if sb.Len() != 2 {
		t.Fatalf("expected len 2, got %d", sb.Len())
	}
	if sb.Line(0)[0].Char != 'b' {
		t.Errorf("expected oldest remaining line to be 'b', got %q", sb.Line(0)[0].Char)
	}
	if sb.Line(1)[0].Char != 'c' {
		t.Errorf("expected newest line to be 'c', got %q", sb.Line(1)[0].Char)
	}
}

func TestMemoryScrollbackLineOutOfRange(t *testing.T) {
	sb := NewMemoryScrollback(4)
	sb.Push([]Cell{{Char: 'a'}})

	if sb.Line(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if sb.Line(5) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestMemoryScrollbackClear(t *testing.T) {
	sb := NewMemoryScrollback(4)
	sb.Push([]Cell{{Char: 'a'}})
	sb.Clear()

	if sb.Len() != 0 {
		t.Errorf("expected len 0 after clear, got %d", sb.Len())
	}
}

func TestMemoryScrollbackSetMaxLinesShrinks(t *testing.T) {
	sb := NewMemoryScrollback(4)
	sb.Push([]Cell{{Char: 'a'}})
	sb.Push([]Cell{{Char: 'b'}})
	sb.Push([]Cell{{Char: 'c'}})

	sb.SetMaxLines(2)

	if sb.Len() != 2 {
		t.Fatalf("expected len 2 after shrink, got %d", sb.Len())
	}
	if sb.Line(0)[0].Char != 'b' || sb.Line(1)[0].Char != 'c' {
		t.Errorf("expected ['b','c'] retained after shrink, got %q %q", sb.Line(0)[0].Char, sb.Line(1)[0].Char)
	}
	if sb.MaxLines() != 2 {
		t.Errorf("expected MaxLines() 2, got %d", sb.MaxLines())
	}
}

func TestMemoryScrollbackZeroMaxDropsPushes(t *testing.T) {
	sb := NewMemoryScrollback(0)
	sb.Push([]Cell{{Char: 'a'}})

	if sb.Len() != 0 {
		t.Errorf("expected len 0 with max 0, got %d", sb.Len())
	}
}

func TestMemoryScrollbackRingWraparound(t *testing.T) {
	sb := NewMemoryScrollback(3)
	for i := 0; i < 10; i++ {
		sb.Push([]Cell{{Char: rune('0' + i)}})
	}

	if sb.Len() != 3 {
		t.Fatalf("expected len 3, got %d", sb.Len())
	}
	want := []rune{'7', '8', '9'}
	for i, w := range want {
		if got := sb.Line(i)[0].Char; got != w {
			t.Errorf("line %d: expected %q, got %q", i, w, got)
		}
	}
}
