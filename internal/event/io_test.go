package event

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonakeys/calcurse/internal/filter"
)

func TestLoad_SingleLine(t *testing.T) {
	s := NewStore()
	err := Load(strings.NewReader("03/15/2024 [7] Dentist appointment\n"), s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 event, got %d", s.Len())
	}

	ev := s.Events()[0]
	if ev.ID != 7 || ev.Mesg != "Dentist appointment" || ev.Note != "" {
		t.Errorf("unexpected event %+v", ev)
	}
	if !ev.InDay(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)) {
		t.Errorf("unexpected day %v", ev.Day)
	}
}

func TestLoad_NoteToken(t *testing.T) {
	s := NewStore()
	line := "12/01/2024 [2] >3da199b8751a7dd2567c37a7a943e94b4a5382e2 Anniversary\n"
	if err := Load(strings.NewReader(line), s, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := s.Events()[0]
	if ev.Note != "3da199b8751a7dd2567c37a7a943e94b4a5382e2" {
		t.Errorf("unexpected note %q", ev.Note)
	}
	if ev.Mesg != "Anniversary" {
		t.Errorf("unexpected message %q", ev.Mesg)
	}
}

func TestLoad_IllegalDate(t *testing.T) {
	s := NewStore()
	err := Load(strings.NewReader("02/30/2024 [1] impossible\n"), s, nil)
	if err == nil || !strings.Contains(err.Error(), "illegal date in event") {
		t.Errorf("expected illegal date error, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("expected nothing inserted")
	}
}

func TestLoad_MalformedPrefix(t *testing.T) {
	s := NewStore()
	err := Load(strings.NewReader("not a date at all\n"), s, nil)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected line-numbered parse error, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	s := NewStore()
	s.New("Dentist appointment", "", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), 7)
	s.New("Anniversary", "3da199b8751a7dd2567c37a7a943e94b4a5382e2",
		time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local), 2)
	s.New("  whitespace  kept  ", "", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), 9)

	var sb strings.Builder
	if err := Save(&sb, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := NewStore()
	if err := Load(strings.NewReader(sb.String()), reloaded, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reloaded.Len() != s.Len() {
		t.Fatalf("expected %d events, got %d", s.Len(), reloaded.Len())
	}
	for i, want := range s.Events() {
		got := reloaded.Events()[i]
		if got.Mesg != want.Mesg || got.Note != want.Note || !got.Day.Equal(want.Day) || got.ID != want.ID {
			t.Errorf("event %d changed in round-trip: %+v vs %+v", i, got, want)
		}
		if got.Hash() != want.Hash() {
			t.Errorf("event %d hash changed in round-trip", i)
		}
	}

	// Serializing the reloaded store must reproduce the bytes exactly.
	var sb2 strings.Builder
	if err := Save(&sb2, reloaded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb2.String() != sb.String() {
		t.Errorf("round-trip not byte-exact:\n%q\n%q", sb.String(), sb2.String())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	s := NewStore()
	err := LoadFile(filepath.Join(t.TempDir(), "apts"), s, nil)
	if err != nil {
		t.Errorf("expected missing file to be tolerated, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("expected empty store")
	}
}

func TestSaveFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "apts")

	s := NewStore()
	s.New("written", "", time.Date(2024, time.July, 4, 0, 0, 0, 0, time.Local), 1)
	if err := SaveFile(path, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if string(content) != "07/04/2024 [1] written\n" {
		t.Errorf("unexpected file content: %q", content)
	}

	reloaded := NewStore()
	if err := LoadFile(path, reloaded, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Errorf("expected 1 event, got %d", reloaded.Len())
	}
}

func TestLoad_FilterAppliesPerLine(t *testing.T) {
	input := "03/15/2024 [1] keep me\n03/16/2024 [2] drop me\n"

	s := NewStore()
	f := &filter.Filter{
		Types:   filter.TypeAll,
		StartTo: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local),
	}
	if err := Load(strings.NewReader(input), s, f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 || s.Events()[0].Mesg != "keep me" {
		t.Error("expected only the first record kept")
	}
}
