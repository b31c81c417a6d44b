package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joelvanveluwen/tide/internal/forecast"
	"github.com/joelvanveluwen/tide/internal/logging"
	"github.com/joelvanveluwen/tide/internal/models"
	"github.com/joelvanveluwen/tide/internal/ui"
	"github.com/joelvanveluwen/tide/internal/willyweather"
	"github.com/mattn/go-isatty"
)

func main() {
	plain := flag.Bool("plain", false, "Print the report once without the loading spinner")
	logLevel := flag.String("log-level", "warn", "Diagnostic log level written to stderr (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	location := models.MooneeBeach
	service := forecast.NewService(willyweather.NewClient(location.TideURL), location, logger)
	presenter := ui.NewTerminalPresenter()

	interactive := !*plain && isatty.IsTerminal(os.Stdout.Fd())
	os.Exit(run(ctx, interactive, location, service, presenter, os.Stdout, os.Stderr))
}

// run shows the report and returns the process exit code
func run(ctx context.Context, interactive bool, location models.Location, source ui.TideSource, presenter ui.Presenter, stdout, stderr io.Writer) int {
	if interactive {
		p := tea.NewProgram(ui.NewModel(ctx, location, source, presenter), tea.WithOutput(stdout))
		final, err := p.Run()
		if err != nil {
			fmt.Fprintf(stderr, "Error running application: %v\n", err)
			return 1
		}
		return finish(final, presenter, stderr)
	}

	fmt.Fprintf(stderr, "Fetching tide data for %s...\n", location.Name)
	report, err := source.Today(ctx)
	if err != nil {
		fmt.Fprint(stderr, presenter.RenderError(err))
		return 1
	}
	fmt.Fprint(stdout, presenter.Render(report))
	return 0
}

// finish reports a failed interactive run on stderr and returns its exit code
func finish(final tea.Model, presenter ui.Presenter, stderr io.Writer) int {
	m, ok := final.(ui.Model)
	if !ok || m.Err() == nil {
		return 0
	}
	if !errors.Is(m.Err(), context.Canceled) {
		fmt.Fprint(stderr, presenter.RenderError(m.Err()))
	}
	return 1
}
