// Package cmd The command line tool for running imoptim.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/imoptim/config"
	zlog "github.com/go-imsto/imoptim/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(cfg *config.Config, args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: imoptim %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	os.Exit(2)
}

// main
var (
	exitStatus = 0
	exitMu     sync.Mutex
)

var commands = []*Command{
	cmdOptimize,
	cmdInfo,
}

const defaultCommand = "optimize"

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func logger() zlog.Logger {
	return zlog.Get()
}

func newLogger(develop bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if develop {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func Main() {
	flag.Usage = func() { usage(1) }
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 && args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		for _, cmd := range commands {
			if cmd.Name() == args[1] {
				tmpl(os.Stdout, helpTemplate, cmd)
				return
			}
		}
		usage(2)
	}
	if len(args) == 0 {
		args = []string{defaultCommand}
	}

	cfg, err := config.Load()
	if err != nil {
		errorf("%s", err)
		_ = config.Usage()
		os.Exit(1)
	}

	logger := newLogger(cfg.InDevelop())
	logger.Debug("logger start")
	atExit(func() { _ = logger.Sync() }) // flushes buffer, if any
	zlog.Set(logger.Sugar())

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			_ = cmd.Flag.Parse(args[1:])
			args = cmd.Flag.Args()

			if !cmd.Run(cfg, args) {
				setExitStatus(1)
			}
			exit()
		}
	}

	errorf("unknown command %q\nRun 'imoptim help' for usage.\n", args[0])
	setExitStatus(2)
	exit()
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: imoptim [command [arguments]]

Without a command, "optimize" is run.

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Use "imoptim help [command]" for more information.
`

var helpTemplate = `usage: imoptim {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	fmt.Fprintln(os.Stderr, "version ", config.Version)
	tmpl(os.Stderr, usageTemplate, commands)
	_ = config.Usage()
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

var atExitFuncs []func()

func atExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}
