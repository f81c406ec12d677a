// Package main is an interactive console client for the movie search session
// controller. Each input line is treated as live typing: queries commit after
// the debounce delay, and commands drive pagination and detail lookups.
//
// Commands:
//
//	/more         load the next page of the current query
//	/detail <id>  show details for an IMDb id
//	/clear        reset the session
//	/quit         exit
//
// Anything else is treated as search input.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"movie-search-service/internal/app/session"
	"movie-search-service/internal/config"
	"movie-search-service/internal/domain"
	"movie-search-service/internal/infra/memcache"
	"movie-search-service/internal/infra/omdb"
	"movie-search-service/internal/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// Keep the terminal clean; only real problems surface.
	log, err := logger.New(
		logger.Config{Level: "error", Format: "console", Output: "stderr"},
		logger.SentryConfig{},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	client := omdb.New(
		omdb.Config{
			BaseURL: cfg.OMDb.BaseURL,
			APIKey:  cfg.OMDb.APIKey,
			Timeout: cfg.OMDb.Timeout,
			CB: omdb.CBConfig{
				MaxRequests:  cfg.OMDb.CB.MaxRequests,
				Interval:     cfg.OMDb.CB.Interval,
				Timeout:      cfg.OMDb.CB.Timeout,
				FailureRatio: cfg.OMDb.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	view := &consoleView{out: os.Stdout}
	controller := session.NewController(client, client, memcache.New(), view, log.Logger)

	ctx := context.Background()

	debouncer := session.NewDebouncer(cfg.Session.DebounceDelay, func(query string) {
		_ = controller.Search(ctx, query)
	})
	defer debouncer.Stop()

	fmt.Println("movie search - type a title, /more, /detail <id>, /clear, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit":
			return
		case line == "/clear":
			controller.Clear()
			fmt.Println("session cleared")
		case line == "/more":
			// Pagination acts on the committed query, not pending input.
			debouncer.Flush()
			_ = controller.LoadMore(ctx)
		case strings.HasPrefix(line, "/detail "):
			id := strings.TrimSpace(strings.TrimPrefix(line, "/detail "))
			_ = controller.ShowDetail(ctx, id)
		default:
			debouncer.Notify(line)
		}
	}
}

// consoleView renders the session onto a terminal. It keeps the shown items
// so append renders can continue the numbering.
type consoleView struct {
	out   *os.File
	shown int
}

func (v *consoleView) RenderResults(movies []domain.MovieSummary, mode domain.RenderMode) {
	if mode == domain.RenderReplace {
		v.shown = 0
	}

	for _, m := range movies {
		v.shown++
		line := fmt.Sprintf("%3d. %s", v.shown, m.DisplayTitle())
		if m.Year != "" {
			line += " (" + m.Year + ")"
		}
		if m.Type != "" {
			line += " [" + m.DisplayType() + "]"
		}
		fmt.Fprintf(v.out, "%s  %s\n", line, m.ImdbID)
	}
}

func (v *consoleView) SetStatusMessage(text string) {
	if text != "" {
		fmt.Fprintln(v.out, text)
	}
}

func (v *consoleView) SetBusy(busy bool) {
	// The status line already announces in-flight work; a terminal has no
	// spinner to toggle.
}

func (v *consoleView) SetPaginationControlVisible(visible bool) {
	if visible {
		fmt.Fprintln(v.out, "(type /more for the next page)")
	}
}

func (v *consoleView) ShowDetailModal(detail *domain.MovieDetail) {
	fmt.Fprintln(v.out, "----")
	fmt.Fprintln(v.out, detail.DisplayTitle())
	if meta := detail.DisplayMeta(); meta != "" {
		fmt.Fprintln(v.out, meta)
	}
	fmt.Fprintln(v.out, detail.DisplayPlot())
	fmt.Fprintln(v.out, "----")
}
