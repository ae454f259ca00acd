package cli

import (
	"fmt"
	"os"

	"github.com/jonakeys/calcurse/internal/config"
	"github.com/jonakeys/calcurse/internal/event"
	"github.com/jonakeys/calcurse/internal/notes"
)

// App bundles the state the CLI commands operate on: the loaded event
// store, the note store and the resolved configuration.
type App struct {
	Store  *event.Store
	Notes  *notes.Store
	Config *config.Config
}

// Run executes the CLI with the given arguments.
// The first argument should be the namespace ("event" or "agenda").
func Run(args []string, app *App) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "event":
		return runEventCommand(subArgs, app)
	case "agenda":
		return runAgenda(subArgs, app)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", namespace)
		printUsage()
		return 1
	}
}

func runEventCommand(args []string, app *App) int {
	if len(args) == 0 {
		printEventUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runAdd(cmdArgs, app)
	case "list", "ls", "l":
		return runList(cmdArgs, app)
	case "delete", "rm", "del":
		return runDelete(cmdArgs, app)
	case "search", "s":
		return runSearch(cmdArgs, app)
	case "export":
		return runExport(cmdArgs, app)
	case "import":
		return runImport(cmdArgs, app)
	case "help", "-h", "--help":
		printEventUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown event command: %s\n", command)
		printEventUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`calcurse - calendar event management

Usage: calcurse [flags] <command> [arguments]

Commands:
  event       Event management commands
  agenda      Show the agenda for one day or a range of days

Flags:
  -D <dir>    Data directory (default ~/.calcurse)

Use "calcurse event help" for event subcommands.`)
}

func printEventUsage() {
	fmt.Println(`calcurse event - Event management commands

Usage: calcurse event <command> [arguments]

Commands:
  add, a      Add an event
              calcurse event add MM/DD/YYYY "Event description"
              calcurse event add -note "note text" MM/DD/YYYY "Event description"

  list, ls, l List events
              calcurse event list              # List every stored event
              calcurse event list MM/DD/YYYY   # List one day's events

  delete, rm  Delete an event by its (abbreviated) hash
              calcurse event delete <hash>

  search, s   Fuzzy-search event messages
              calcurse event search <query>

  export      Write all events as iCalendar to stdout or a file
              calcurse event export [file]

  import      Import all-day VEVENTs from an iCalendar file
              calcurse event import <file>

  help        Show this help message`)
}
