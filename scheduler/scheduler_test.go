package scheduler

import (
	"testing"
	"time"
)

func TestAfterFiresOnceAtDeadline(t *testing.T) {
	s := New()
	now := time.Unix(0, 0)
	fired := 0

	s.After(now, 10*time.Second, "topic", func() { fired++ })

	if n := s.Tick(now.Add(5 * time.Second)); n != 0 {
		t.Fatalf("expected 0 dispatched before deadline, got %d", n)
	}
	if fired != 0 {
		t.Fatalf("expected event not fired early, got %d", fired)
	}

	if n := s.Tick(now.Add(10 * time.Second)); n != 1 {
		t.Fatalf("expected 1 dispatched at deadline, got %d", n)
	}
	if fired != 1 {
		t.Fatalf("expected event fired once, got %d", fired)
	}

	if n := s.Tick(now.Add(20 * time.Second)); n != 0 {
		t.Fatalf("expected one-shot not to fire again, got %d", n)
	}
}

func TestEveryRepeats(t *testing.T) {
	s := New()
	now := time.Unix(0, 0)
	fired := 0

	s.Every(now, time.Second, TopicBlinkCursor, func() { fired++ })

	s.Tick(now.Add(1 * time.Second))
	s.Tick(now.Add(2 * time.Second))
	s.Tick(now.Add(3 * time.Second))

	if fired != 3 {
		t.Errorf("expected 3 firings, got %d", fired)
	}
}

func TestCancelTopicRemovesAllEntries(t *testing.T) {
	s := New()
	now := time.Unix(0, 0)
	fired := 0

	s.After(now, time.Second, TopicBlinkCursor, func() { fired++ })
	s.After(now, time.Second, TopicBlinkCursor, func() { fired++ })
	s.After(now, time.Second, TopicDelayedSearch, func() { fired++ })

	s.CancelTopic(TopicBlinkCursor)

	n := s.Tick(now.Add(2 * time.Second))
	if n != 1 {
		t.Errorf("expected only the uncanceled topic's entry to fire, got %d", n)
	}
	if fired != 1 {
		t.Errorf("expected 1 firing, got %d", fired)
	}
}

func TestCancelSingleHandle(t *testing.T) {
	s := New()
	now := time.Unix(0, 0)
	fired := 0

	h := s.After(now, time.Second, "topic", func() { fired++ })
	s.Cancel(h)

	n := s.Tick(now.Add(2 * time.Second))
	if n != 0 {
		t.Errorf("expected canceled entry not dispatched, got %d", n)
	}
	if fired != 0 {
		t.Errorf("expected event not to fire, got %d", fired)
	}
}

func TestTickDispatchesInDeadlineOrder(t *testing.T) {
	s := New()
	now := time.Unix(0, 0)
	var order []int

	s.After(now, 3*time.Second, "topic", func() { order = append(order, 3) })
	s.After(now, 1*time.Second, "topic", func() { order = append(order, 1) })
	s.After(now, 2*time.Second, "topic", func() { order = append(order, 2) })

	s.Tick(now.Add(5 * time.Second))

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected dispatch order [1 2 3], got %v", order)
	}
}

func TestLenAndNextDeadline(t *testing.T) {
	s := New()
	if _, ok := s.NextDeadline(); ok {
		t.Fatal("expected no next deadline on empty scheduler")
	}
	if s.Len() != 0 {
		t.Fatalf("expected len 0, got %d", s.Len())
	}

	now := time.Unix(0, 0)
	s.After(now, 5*time.Second, "topic", func() {})
	s.After(now, 1*time.Second, "topic", func() {})

	if s.Len() != 2 {
		t.Errorf("expected len 2, got %d", s.Len())
	}
	deadline, ok := s.NextDeadline()
	if !ok {
		t.Fatal("expected a next deadline")
	}
	if !deadline.Equal(now.Add(1 * time.Second)) {
		t.Errorf("expected soonest deadline at +1s, got %v", deadline)
	}
}

func TestCancelAlreadyCanceledIsNoop(t *testing.T) {
	s := New()
	now := time.Unix(0, 0)
	h := s.After(now, time.Second, "topic", func() {})

	s.Cancel(h)
	s.Cancel(h) // should not panic

	if s.Len() != 0 {
		t.Errorf("expected len 0, got %d", s.Len())
	}
}
