package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"etfdash/internal/api"
	"etfdash/internal/config"
	"etfdash/internal/session"
	"etfdash/internal/ui"
	"etfdash/pkg/logger"
)

func main() {
	cfg := config.Load()

	apiURL := flag.String("api-url", cfg.APIURL, "ETF service URL")
	maxWidth := flag.Int("max-width", 0, "Max columns (0 = no limit)")
	flag.Parse()

	log := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	log.Info().Str("api_url", *apiURL).Msg("Starting etfdash")

	client := api.NewClient(*apiURL, log)
	sess := session.NewStore(session.NewBridge(cfg.SessionFile, log), log)

	m := ui.NewModel(client, sess, log, *maxWidth)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
