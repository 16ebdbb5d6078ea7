package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	layoutFlag      = flag.String("layout", "", "TOML layout file (default: $"+softkeys.LayoutPathEnvVar+" or built-in presets)")
	typeFlag        = flag.String("type", "", "input type: alpha, alpha_numeric, alpha_numeric_special, alpha_special, numeric, numeric_special, special")
	specialFlag     = flag.String("special", "", "override the special character set")
	autoReleaseFlag = flag.Bool("auto-release", false, "release shift after one character")
	logLevelFlag    = flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFileFlag     = flag.String("log-file", "", "also write logs to logs/<name>")
	debugFlag       = flag.Bool("debug", false, "log keyboard internals at debug level")
	evdevFlag       = flag.String("evdev", "", "read buttons from a Linux input device, e.g. /dev/input/event3")
	noCursorFlag    = flag.Bool("no-cursor", false, "script mode: behave like a host that reports no caret")
)

func main() {
	flag.Parse()

	softkeys.Init(softkeys.Options{
		LogFilename: *logFileFlag,
		LogLevel:    *logLevelFlag,
		Debug:       *debugFlag,
	})
	defer softkeys.Close()
	logger := softkeys.GetLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		value, err := runScript(cfg, os.Stdin, !*noCursorFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(value)
		return
	}

	m, err := newModel(cfg, softkeys.GetInputMapping())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *evdevFlag != "" {
		reader, err := softkeys.OpenEvdev(*evdevFlag, softkeys.GetInputMapping())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		events := make(chan softkeys.InputEvent)
		go func() {
			defer close(events)
			if err := reader.Run(ctx, events); err != nil {
				logger.Error("Input device stopped", "device", reader.Name(), "error", err)
			}
		}()
		m.evdev = events
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if fm, ok := final.(model); ok && fm.submitted {
		fmt.Println(fm.input.Value())
		return
	}
	os.Exit(2)
}

func loadConfig() (softkeys.Config, error) {
	var cfg softkeys.Config
	if *layoutFlag != "" {
		loaded, err := softkeys.LoadConfigFromFile(*layoutFlag)
		if err != nil {
			return softkeys.Config{}, err
		}
		cfg = loaded
	} else {
		cfg = softkeys.GetConfig()
	}

	if *typeFlag != "" {
		it, err := softkeys.ParseInputType(*typeFlag)
		if err != nil {
			return softkeys.Config{}, err
		}
		cfg.InputType = it
	}
	if *specialFlag != "" {
		cfg.SpecialCharacters = *specialFlag
	}
	if *autoReleaseFlag {
		cfg.AutoReleaseShift = true
	}
	return cfg, cfg.Validate()
}
