package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonakeys/calcurse/internal/agenda"
	"github.com/jonakeys/calcurse/internal/calendar"
	"github.com/jonakeys/calcurse/internal/event"
	"github.com/jonakeys/calcurse/internal/filter"
	"github.com/jonakeys/calcurse/internal/ical"
	"github.com/jonakeys/calcurse/internal/logs"
)

func runAdd(args []string, app *App) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	noteText := fs.String("note", "", "Attach a note with the given text")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "Error: date and description required")
		fmt.Fprintln(os.Stderr, "Usage: calcurse event add MM/DD/YYYY \"Event description\"")
		return 1
	}

	day, err := parseDay(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	mesg := strings.Join(rest[1:], " ")

	note := ""
	if *noteText != "" {
		note, err = app.Notes.Add(*noteText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error attaching note: %v\n", err)
			return 1
		}
	}

	ev := app.Store.New(mesg, note, day, nextID(app.Store, day))
	if err := event.SaveFile(app.Config.AptsPath(), app.Store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving calendar: %v\n", err)
		return 1
	}

	logs.Logger.Printf("added event %s", ev.Hash())
	fmt.Printf("Added: %s\n", ev.String())
	fmt.Printf("Hash: %s\n", ev.Hash())
	return 0
}

func runList(args []string, app *App) int {
	if len(args) > 0 {
		day, err := parseDay(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		printDay(app, day)
		return 0
	}

	if app.Store.Len() == 0 {
		fmt.Println("No events found.")
		return 0
	}

	var current time.Time
	for _, ev := range app.Store.Events() {
		if !calendar.SameDay(ev.Day, current) {
			current = ev.Day
			fmt.Println(dayHeaderStyle.Render(current.Format("Monday 01/02/2006")))
		}
		printEvent(app, ev)
	}

	fmt.Printf("\n%d event(s)\n", app.Store.Len())
	return 0
}

func runDelete(args []string, app *App) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: event hash required")
		fmt.Fprintln(os.Stderr, "Usage: calcurse event delete <hash>")
		return 1
	}

	ev, err := findEventByPartialHash(app.Store, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := app.Store.Delete(ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting event: %v\n", err)
		return 1
	}
	if ev.Note != "" {
		if err := app.Notes.Release(ev.Note); err != nil {
			logs.Logger.Printf("could not release note %s: %v", ev.Note, err)
		}
	}
	if err := event.SaveFile(app.Config.AptsPath(), app.Store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving calendar: %v\n", err)
		return 1
	}

	fmt.Printf("Deleted: %s\n", ev.Mesg)
	return 0
}

func runSearch(args []string, app *App) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: search query required")
		fmt.Fprintln(os.Stderr, "Usage: calcurse event search <query>")
		return 1
	}

	results := agenda.Search(app.Store, strings.Join(args, " "))
	if len(results) == 0 {
		fmt.Println("No events found.")
		return 0
	}

	for _, ev := range results {
		fmt.Printf("%s  ", ev.Day.Format("01/02/2006"))
		printEvent(app, ev)
	}
	fmt.Printf("\n%d event(s)\n", len(results))
	return 0
}

func runExport(args []string, app *App) int {
	out := os.Stdout
	if len(args) > 0 {
		f, err := os.Create(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", args[0], err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := ical.Export(app.Store, app.Notes, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting events: %v\n", err)
		return 1
	}
	return 0
}

func runImport(args []string, app *App) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: file required")
		fmt.Fprintln(os.Stderr, "Usage: calcurse event import <file>")
		return 1
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", args[0], err)
		return 1
	}
	defer f.Close()

	n, err := ical.Import(f, app.Store, app.Notes, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing events: %v\n", err)
		return 1
	}
	if err := event.SaveFile(app.Config.AptsPath(), app.Store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving calendar: %v\n", err)
		return 1
	}

	fmt.Printf("Imported %d event(s)\n", n)
	return 0
}

func runAgenda(args []string, app *App) int {
	day := time.Now()
	days := 1

	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	fs.IntVar(&days, "d", 1, "Number of days to show")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if rest := fs.Args(); len(rest) > 0 {
		parsed, err := parseDay(rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		day = parsed
	}

	from := calendar.Midnight(day)
	to := from.AddDate(0, 0, days-1)
	for _, bucket := range agenda.Range(app.Store, from, to) {
		fmt.Println(dayHeaderStyle.Render(bucket.Date.Format("Monday 01/02/2006")))
		for _, item := range bucket.Items {
			if item.IsNone() {
				fmt.Println(emptyStyle.Render("  (no events)"))
				continue
			}
			printEvent(app, item.Event)
		}
	}
	return 0
}

func printDay(app *App, day time.Time) {
	fmt.Println(dayHeaderStyle.Render(day.Format("Monday 01/02/2006")))
	for _, item := range agenda.Day(app.Store, day) {
		if item.IsNone() {
			fmt.Println(emptyStyle.Render("  (no events)"))
			continue
		}
		printEvent(app, item.Event)
	}
}

func printEvent(app *App, ev *event.Event) {
	line := fmt.Sprintf("  %s  %s", hashStyle.Render(ev.Hash()[:7]), ev.Mesg)
	if ev.Note != "" {
		if title := app.Notes.Title(ev.Note); title != "" {
			line += noteStyle.Render("  [" + title + "]")
		} else {
			line += noteStyle.Render("  [note]")
		}
	}
	fmt.Println(line)
}

// parseDay parses an MM/DD/YYYY argument into a local midnight
// timestamp.
func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation("01/02/2006", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected MM/DD/YYYY", s)
	}
	return t, nil
}

// nextID returns the next free identifier for events on the given
// day. Identifiers only disambiguate within one day.
func nextID(s *event.Store, day time.Time) int {
	id := 1
	for _, ev := range s.Events() {
		if ev.InDay(day) && ev.ID >= id {
			id = ev.ID + 1
		}
	}
	return id
}

func findEventByPartialHash(s *event.Store, partial string) (*event.Event, error) {
	var matches []*event.Event
	for _, ev := range s.Events() {
		if filter.HashMatches(partial, ev.Hash()) {
			matches = append(matches, ev)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no event found with hash: %s", partial)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("multiple events match hash '%s', please be more specific", partial)
	}

	return matches[0], nil
}
