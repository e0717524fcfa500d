package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/today/internal/logging"
	"github.com/idilsaglam/today/internal/model"
	"github.com/idilsaglam/today/internal/store/jsonstore"
	"github.com/idilsaglam/today/internal/tui"
	"github.com/idilsaglam/today/internal/ui"
)

// Options carry what the root command resolved before dispatch.
type Options struct {
	File    string      // data file, required
	Printer *ui.Printer // nil means plain stdout/stderr
	Logger  *log.Logger // nil discards
	Now     func() time.Time
}

// interactive runs the full-screen list; swapped out in tests.
var interactive = tui.Run

type command struct {
	name  string
	text  string // add
	index int    // check, 1-based
	days  int    // ls
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	p := opt.Printer
	if p == nil {
		p = ui.NewPrinter(os.Stdout, os.Stderr, "classic", true)
	}
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cmd, code := parse(args, p)
	if code >= 0 {
		return code
	}

	storeOpts := []jsonstore.Option{jsonstore.WithLogger(logger)}
	if opt.Now != nil {
		storeOpts = append(storeOpts, jsonstore.WithClock(opt.Now))
	}
	s := jsonstore.Open(opt.File, storeOpts...)
	if err := s.Load(); err != nil {
		return fatal(p, logger, "load", s.Path(), err)
	}

	code = 0
	title, view := "Today", s.Today()
	switch cmd.name {
	case "add":
		code = doAdd(p, s, cmd.text)
		view = s.Today()
	case "check":
		code = doCheck(p, s, cmd.index)
	case "ls":
		w, err := s.Windowed(cmd.days)
		if err != nil {
			p.Fail("ls: " + err.Error())
			code = 2
			break
		}
		view = w
		if cmd.days > 1 {
			title = fmt.Sprintf("Last %d days", cmd.days)
		}
	case "ui":
		changed, err := interactive(s, p.Theme)
		if err != nil {
			p.Fail("tui: " + err.Error())
			code = 1
		}
		logger.Debug("interactive list closed", "changed", changed)
		view = s.Today()
	}

	p.View(title, view)

	if err := s.Save(); err != nil {
		return fatal(p, logger, "save", s.Path(), err)
	}
	return code
}

// parse validates the argument shape before any file is touched.
// A non-negative code means stop with that code.
func parse(args []string, p *ui.Printer) (command, int) {
	if len(args) == 0 {
		return command{}, -1
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(p.Out)
		return command{}, 0

	case "add":
		text := strings.TrimSpace(strings.Join(a, " "))
		if text == "" {
			p.Fail("usage: todo add <item text...>")
			return command{}, 2
		}
		return command{name: cmd, text: text}, -1

	case "check":
		if len(a) != 1 {
			p.Fail("usage: todo check <index>")
			return command{}, 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			p.Fail("check: not a number: " + a[0])
			return command{}, 2
		}
		return command{name: cmd, index: n}, -1

	case "ls":
		if len(a) > 1 {
			p.Fail("usage: todo ls [days]")
			return command{}, 2
		}
		days := 1
		if len(a) == 1 {
			n, err := strconv.Atoi(a[0])
			if err != nil || n < 1 {
				p.Fail("ls: days must be a positive number: " + a[0])
				return command{}, 2
			}
			days = n
		}
		return command{name: cmd, days: days}, -1

	case "ui":
		if len(a) != 0 {
			p.Fail("usage: todo ui")
			return command{}, 2
		}
		return command{name: cmd}, -1
	}

	p.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(p.Err)
	PrintHelp(p.Err)
	return command{}, 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - today's to-do list

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  (none)             Show today's items
  add <text...>      Add a new item (text can be multiple words)
  check <index>      Mark today's item at 1-based index as done
  ls [days]          Show items from the last N days (default 1)
  ui                 Interactive list of today's items
  help               Show this help

Flags:
  --file <path>      Data file (default ~/.today.jsonl)
  --config <path>    Config file (default ~/.config/today/config.yaml)
  --theme <name>     classic, neon or mono
  --no-color         Plain output
  --verbose          Debug logging on stderr

Examples:
  todo add "Buy milk"
  todo check 2
  todo ls 7
`)
}

// -------------- subcommand impls ----------------

func doAdd(p *ui.Printer, s *jsonstore.Store, text string) int {
	if _, err := s.Add(text); err != nil {
		p.Fail("add: " + err.Error())
		return 2
	}
	p.OK("added")
	return 0
}

func doCheck(p *ui.Printer, s *jsonstore.Store, userIndex int) int {
	_, err := s.CheckAt(userIndex - 1)
	var ie *jsonstore.IndexError
	switch {
	case err == nil:
		p.OK("checked")
		return 0
	case errors.As(err, &ie):
		p.Fail(fmt.Sprintf("index out of range: have %d, got %d", ie.Len, userIndex))
		p.Hint("Hint: run `todo` to see today's items")
		return 2
	case errors.Is(err, model.ErrAlreadyChecked):
		p.Warn(fmt.Sprintf("item %d is already checked", userIndex))
		return 2
	}
	p.Fail("check: " + err.Error())
	return 1
}

// fatal reports an environment failure. Nothing is saved afterwards, so a
// corrupt data file is left for the user to inspect.
func fatal(p *ui.Printer, logger *log.Logger, op, path string, err error) int {
	// The printer already shows the failure; the log line is for --verbose.
	logger.Debug(op+" failed", "path", path, "err", err)
	p.Fail(op + ": " + err.Error())
	if errors.Is(err, jsonstore.ErrCorruptData) {
		p.Hint(fmt.Sprintf("Hint: fix or move %s, then run todo again", path))
	}
	return 1
}
