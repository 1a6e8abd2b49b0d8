// Buffetcore runs Bob's Weird Buffet, an idle clicker about a very hungry man
// and the minions who feed him.
// Usage: buffetcore [--plain] [--script <file>] [--config <file>] [--content <dir>] [--seed <n>] ...
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/nathoo/buffetcore/cli"
	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/content"
	"github.com/nathoo/buffetcore/engine"
	"github.com/nathoo/buffetcore/engine/events"
	"github.com/nathoo/buffetcore/engine/flavor"
	"github.com/nathoo/buffetcore/loader"
	"github.com/nathoo/buffetcore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: buffetcore [--version] [--plain] [--script <file>] [--trace] [--config <file>] [--env <file>] [--content <dir>] [--seed <n>]"

func main() {
	plain := false
	trace := false
	envFile := ".env"
	var configFile, contentDir, scriptFile string
	var seed int64

	args := os.Args[1:]
	next := func(i *int, flag string) string {
		if *i+1 >= len(args) {
			fatalf("%s requires a value\n%s", flag, usage)
		}
		*i++
		return args[*i]
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("buffetcore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			scriptFile = next(&i, "--script")
		case "--config":
			configFile = next(&i, "--config")
		case "--env":
			envFile = next(&i, "--env")
		case "--content":
			contentDir = next(&i, "--content")
		case "--seed":
			v, err := strconv.ParseInt(next(&i, "--seed"), 10, 64)
			if err != nil {
				fatalf("--seed: %v", err)
			}
			seed = v
		default:
			fatalf("unknown argument %q\n%s", args[i], usage)
		}
	}

	bal, err := loadConfig(envFile, configFile)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}
	if seed != 0 {
		bal.Content.Seed = seed
	}

	tables, err := loadContent(contentDir, bal.Content)
	if err != nil {
		fatalf("Error loading content: %v", err)
	}

	useTUI := scriptFile == "" && !plain && isTerminal()
	logger, closeLog := debugLogger(useTUI)
	defer closeLog()

	// Rolls and flavor follow --seed when given and the clock otherwise.
	rollSeed := seed
	if rollSeed == 0 {
		rollSeed = time.Now().UnixNano()
	}
	describer := flavor.New(rollSeed)

	if useTUI {
		feed := tui.NewEventFeed(64)
		eng := engine.New(tables.Defs(), engine.Options{
			Balance: bal, Seed: rollSeed, Logger: logger, Notifier: feed,
		})
		if err := tui.Run(eng, describer, feed); err != nil {
			fatalf("Error: %v", err)
		}
		return
	}

	eng := engine.New(tables.Defs(), engine.Options{
		Balance: bal, Seed: rollSeed, Logger: logger, Notifier: events.Discard,
	})
	c := cli.New(eng, describer)
	c.Trace = trace

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Script mode: read commands from a file, echo them, tick only on /tick.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fatalf("Error opening script: %v", err)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
		c.AutoTick = false
	}
	c.Run(ctx)
}

// loadConfig layers defaults, the YAML file, the .env file and the
// environment, then validates the result.
func loadConfig(envFile, configFile string) (config.Balance, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Balance{}, err
	}
	bal := config.Default()
	if configFile != "" {
		var err error
		if bal, err = config.Load(configFile); err != nil {
			return config.Balance{}, err
		}
	}
	bal = config.FromEnv(bal)
	if err := bal.Validate(); err != nil {
		return config.Balance{}, err
	}
	return bal, nil
}

// loadContent builds the content tables, from a Lua pack when dir is set.
func loadContent(dir string, params config.Content) (content.Tables, error) {
	if dir != "" {
		return loader.Load(dir, params)
	}
	tables := content.Generate(params)
	if err := loader.Validate(tables); err != nil {
		return content.Tables{}, err
	}
	return tables, nil
}

// debugLogger returns the engine's diagnostic logger. BUFFET_DEBUG=1 turns
// it on: to debug.log under the TUI, to stderr otherwise.
func debugLogger(useTUI bool) (*log.Logger, func()) {
	if os.Getenv("BUFFET_DEBUG") != "1" {
		return nil, func() {}
	}
	if !useTUI {
		return log.New(os.Stderr, "buffet ", log.LstdFlags), func() {}
	}
	logger, f, err := tui.OpenDebugLog("debug.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil, func() {}
	}
	return logger, func() { f.Close() }
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
