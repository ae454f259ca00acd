package agenda

import (
	"testing"
	"time"

	"github.com/jonakeys/calcurse/internal/event"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func TestDay(t *testing.T) {
	s := event.NewStore()
	s.New("breakfast meeting", "", day(2024, time.March, 15), 1)
	s.New("dentist", "", day(2024, time.March, 15), 2)
	s.New("elsewhere", "", day(2024, time.March, 16), 3)

	items := Day(s, day(2024, time.March, 15))
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.IsNone() || it.Event == nil {
			t.Error("expected event items only")
		}
	}
	if items[0].Event.Mesg != "breakfast meeting" {
		t.Errorf("expected store order, got %q first", items[0].Event.Mesg)
	}
}

func TestDay_Empty(t *testing.T) {
	s := event.NewStore()
	items := Day(s, day(2024, time.March, 15))

	if len(items) != 1 {
		t.Fatalf("expected a single placeholder item, got %d", len(items))
	}
	if !items[0].IsNone() {
		t.Error("expected the empty-day marker")
	}
	if items[0].Event != nil {
		t.Error("empty-day marker must not carry an event")
	}
}

func TestRange(t *testing.T) {
	s := event.NewStore()
	s.New("mid", "", day(2024, time.March, 15), 1)

	buckets := Range(s, day(2024, time.March, 14), day(2024, time.March, 16))
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if !buckets[0].Items[0].IsNone() {
		t.Error("expected March 14 empty")
	}
	if buckets[1].Items[0].IsNone() {
		t.Error("expected March 15 to carry the event")
	}
	if !buckets[2].Items[0].IsNone() {
		t.Error("expected March 16 empty")
	}
}

func TestSearch(t *testing.T) {
	s := event.NewStore()
	s.New("Dentist appointment", "", day(2024, time.March, 15), 1)
	s.New("Team lunch", "", day(2024, time.March, 16), 2)
	s.New("Dinner with dentist", "", day(2024, time.March, 17), 3)

	results := Search(s, "dentist")
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	for _, ev := range results {
		if ev.Mesg == "Team lunch" {
			t.Error("unexpected match")
		}
	}

	if len(Search(s, "zzzz")) != 0 {
		t.Error("expected no matches")
	}
}
