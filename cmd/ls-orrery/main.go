// Command ls-orrery is a terminal UI visualizing the Sun-Earth-Moon
// system: orbits, day/night spin, and the current lunar phase, driven
// by a controllable simulated clock.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/ui"
)

const dateLayout = "2006-01-02"

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logPath := flag.String("log-file", "", "Write logs to file (TUI owns the terminal)")
	speed := flag.Int("speed", 10, "Initial simulation speed (0-100, 10 = one day per second)")
	dateStr := flag.String("date", "", "Starting date (YYYY-MM-DD, default now)")
	reportMode := flag.Bool("report", false, "Print a phase report instead of the TUI")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	start := time.Now().UTC()
	if *dateStr != "" {
		t, err := time.Parse(dateLayout, *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -date %q (want YYYY-MM-DD)\n", *dateStr)
			os.Exit(1)
		}
		start = t
	}

	if *speed < orrery.MinSpeed || *speed > orrery.MaxSpeed {
		fmt.Fprintf(os.Stderr, "Error: -speed must be between %d and %d\n",
			orrery.MinSpeed, orrery.MaxSpeed)
		os.Exit(1)
	}

	// Headless mode: one report, no TUI.
	if *reportMode {
		clock := orrery.NewClock(start, *speed)
		orrery.WriteReport(os.Stdout, clock)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal (use -report for headless output)")
		os.Exit(1)
	}

	// The TUI handles q/ctrl+c itself; signals cover kill from outside.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting ls-orrery at %s, speed %d", start.Format(dateLayout), *speed)

	model := ui.New(start, *speed)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go func() {
		<-sigCh
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited: %v", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
