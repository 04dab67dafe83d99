package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gridui/internal/config"
	"gridui/internal/grid"
	"gridui/internal/session"
	"gridui/internal/trace"
	"gridui/internal/ui"
	"gridui/internal/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The terminal belongs to the program, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "gridui")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	}
	viewLog := log.New(io.Discard, "", 0)
	if cfg.Log.Verbose {
		viewLog = log.Default()
	}

	provider, err := trace.NewProvider(ctx, trace.Options{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    true,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Printf("main: trace shutdown: %v", err)
		}
	}()

	var sched view.Scheduler = view.Immediate{}
	if cfg.Render.Mode == config.ModeTick {
		ticker := view.NewTicker(cfg.Render.Interval)
		go ticker.Run(ctx)
		sched = ticker
	}

	var program *tea.Program
	bounds := grid.Bounds{Rows: cfg.Grid.Rows, Cols: cfg.Grid.Cols}
	flusher := ui.NewFlusher(nil)
	iface := view.NewBuilder(bounds).
		Transform(func() view.Transform { return newCatalogue(bounds, cfg.Demo.Items) }).
		Flusher(flusher).
		Scheduler(sched).
		Tracer(provider.Tracer("gridui/view")).
		Logger(viewLog).
		OnClose(func(_ context.Context, reason view.CloseReason, v *view.View) error {
			log.Printf("main: view %s closed (%s)", v.ID(), reason)
			if program != nil {
				program.Quit()
			}
			return nil
		}).
		Build()

	user := view.User{ID: currentUser(), Name: currentUser()}
	connected := true
	tracker := session.New(func() (map[string]bool, error) {
		return map[string]bool{user.ID: connected}, nil
	})

	v, err := tracker.Open(ctx, iface, user)
	if err != nil {
		return fmt.Errorf("open view: %w", err)
	}

	model := ui.NewModel(ctx, v, fmt.Sprintf("catalogue · %d items", cfg.Demo.Items))
	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	flusher.Attach(program)

	_, runErr := program.Run()
	connected = false

	// A view still open here lost its terminal without the user quitting.
	if n, err := tracker.Prune(context.Background()); err != nil {
		log.Printf("main: prune: %v", err)
	} else if n > 0 {
		log.Printf("main: pruned %d disconnected views", n)
	}
	if err := tracker.Shutdown(context.Background()); err != nil {
		log.Printf("main: shutdown: %v", err)
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
