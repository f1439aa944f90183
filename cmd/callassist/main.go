package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"callassist/internal/config"
	"callassist/internal/conversation"
	"callassist/internal/layout"
	"callassist/internal/trace"
	"callassist/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// flags holds command-line overrides applied on top of the loaded config.
type flags struct {
	configPath string
	logFile    string
	verbose    bool
	noSidebar  bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "path to a TOML config file (default ~/.config/callassist/config.toml)")
	flag.StringVar(&f.logFile, "log", "", "write debug log to this file")
	flag.BoolVar(&f.verbose, "verbose", false, "log drag and swap events")
	flag.BoolVar(&f.noSidebar, "no-sidebar", false, "start with the history sidebar hidden")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: callassist [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Call assistant with a live transcript, analysis feed and chat.\n")
		fmt.Fprintf(os.Stderr, "Drag a panel by its header onto another slot to swap them.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return f
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.verbose {
		cfg.Log.Verbose = true
	}
	if f.noSidebar {
		cfg.UI.ShowSidebar = false
	}

	// The terminal belongs to the TUI; log to a file or nowhere.
	if cfg.Log.File != "" {
		lf, err := tea.LogToFile(cfg.Log.File, "callassist")
		if err != nil {
			return fmt.Errorf("open log %q: %w", cfg.Log.File, err)
		}
		defer lf.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	var observers []layout.Observer
	tp, err := trace.NewProvider(ctx, trace.Config{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("trace provider: %w", err)
	}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Printf("trace: shutdown: %v", err)
			}
		}()
		observers = append(observers, trace.NewLayoutObserver(tp))
	}
	if cfg.Log.Verbose {
		observers = append(observers, &layout.LogObserver{})
		log.Printf("config: sidebar=%v width=%d trace=%q", cfg.UI.ShowSidebar, cfg.UI.SidebarWidth, cfg.Trace.Endpoint)
	}

	model := ui.NewAppModel(ui.Options{
		Store:        conversation.NewStore(conversation.Seed(time.Now())...),
		Observer:     layout.NewMultiObserver(observers...),
		SidebarWidth: cfg.UI.SidebarWidth,
		ShowSidebar:  cfg.UI.ShowSidebar,
	}).AsTeaModel()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "callassist: %v\n", err)
		os.Exit(1)
	}
}
