package event

import (
	"testing"
	"time"
)

func TestStoreOrdering(t *testing.T) {
	s := NewStore()
	s.New("b later day", "", day(2024, time.March, 16), 1)
	s.New("z same day", "", day(2024, time.March, 15), 2)
	s.New("a same day", "", day(2024, time.March, 15), 3)
	s.New("m same day", "", day(2024, time.March, 15), 4)

	got := s.Events()
	wantMesg := []string{"a same day", "m same day", "z same day", "b later day"}
	if len(got) != len(wantMesg) {
		t.Fatalf("expected %d events, got %d", len(wantMesg), len(got))
	}
	for i, w := range wantMesg {
		if got[i].Mesg != w {
			t.Errorf("position %d: expected %q, got %q", i, w, got[i].Mesg)
		}
	}
}

func TestStoreOrdering_IdentifierIgnored(t *testing.T) {
	s := NewStore()
	d := day(2024, time.May, 1)
	s.New("beta", "", d, 1)
	s.New("alpha", "", d, 99)

	if s.Events()[0].Mesg != "alpha" {
		t.Error("expected message order to win regardless of identifier")
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	ev := s.New("to remove", "", day(2024, time.March, 15), 1)
	s.New("to keep", "", day(2024, time.March, 15), 2)

	if err := s.Delete(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 event left, got %d", s.Len())
	}
	if s.Events()[0].Mesg != "to keep" {
		t.Error("deleted the wrong event")
	}

	// Deleting the same record again breaks the ownership contract.
	if err := s.Delete(ev); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_ByIdentityNotValue(t *testing.T) {
	s := NewStore()
	s.New("same text", "", day(2024, time.March, 15), 1)
	twin := &Event{ID: 1, Day: day(2024, time.March, 15), Mesg: "same text"}

	if err := s.Delete(twin); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for an equal-but-foreign record, got %v", err)
	}
}

func TestPaste(t *testing.T) {
	s := NewStore()
	ev := s.New("moving", "", day(2024, time.March, 15), 1)
	s.New("anchor", "", day(2024, time.March, 20), 2)

	if err := s.Delete(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Paste(ev, day(2024, time.March, 25))

	got := s.Events()
	if got[len(got)-1] != ev {
		t.Error("expected moved event at the end of the order")
	}
	if !ev.InDay(day(2024, time.March, 25)) {
		t.Error("expected the day field to be reassigned")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 events, got %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.New("one", "", day(2024, time.March, 15), 1)
	s.New("two", "", day(2024, time.March, 16), 2)

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d events", s.Len())
	}
}
