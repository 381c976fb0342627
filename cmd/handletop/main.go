package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/os-handle/track"
)

func main() {
	var (
		workers     = flag.Int("workers", 4, "Concurrent demo workers")
		duration    = flag.Duration("duration", 3*time.Second, "How long the plain demo runs")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log handle lifecycle events")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		track.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "stdout is not a terminal; running the plain report")
		} else {
			if err := runInteractive(*workers); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := run(*workers, *duration); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(workers int, duration time.Duration) error {
	fmt.Printf("Churning handles with %d workers for %v...\n\n", workers, duration)

	w := startWorkload(workers)
	time.Sleep(duration)
	w.shutdown()

	printReport(track.Default().Stats())

	if err := track.Default().Close(); err != nil {
		fmt.Printf("\n%s %v\n", errorStyle.Render("leaked:"), err)
	} else {
		fmt.Printf("\n%s\n", okStyle.Render("no leaks"))
	}
	return nil
}

func printReport(stats []track.Stat) {
	fmt.Println(titleStyle.Render("Handle Report"))
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-14s %8s %8s %8s", "CATEGORY", "LIVE", "TOTAL", "CLOSED")))
	for _, s := range stats {
		line := fmt.Sprintf("%-14s %8d %8d %8d", s.Category, s.Live, s.Total, s.Released)
		if s.Live > 0 {
			fmt.Println(liveStyle.Render(line))
		} else {
			fmt.Println(line)
		}
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)
