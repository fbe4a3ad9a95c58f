package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jask/greetcards/internal/config"
	"github.com/jask/greetcards/internal/deck"
	"github.com/jask/greetcards/internal/tui"
)

const fallbackWidth = 80

func main() {
	configPath := flag.String("config", "", "config file (TOML)")
	cardsPath := flag.String("cards", "", "card file (.toml or .yaml), overrides deck.path")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config (or the default path) and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *cardsPath != "" {
		cfg.Deck.Path = *cardsPath
	}

	if *writeConfig {
		if err := config.Save(cfg, *configPath); err != nil {
			log.Fatalf("save config: %v", err)
		}
		return
	}

	cards := deck.DefaultCards()
	if cfg.Deck.Path != "" {
		if cards, err = deck.LoadCards(cfg.Deck.Path); err != nil {
			log.Fatalf("cards: %v", err)
		}
	}

	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "greetcards")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = fallbackWidth
	}

	var (
		p         *tea.Program
		continued bool
	)
	app, err := tui.New(cfg, cards, width, func() {
		continued = true
		// Quit sends on the program's channel, which Update is draining.
		go p.Quit()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	p = tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		app.Close()
		os.Exit(1)
	}
	if continued {
		fmt.Println("Thanks for reading. Go see what's next.")
	}
}
