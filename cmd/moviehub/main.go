package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moviehub/internal/catalog"
	"moviehub/internal/moderation"
	"moviehub/internal/session"
	"moviehub/internal/tui"
	"moviehub/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// defaultRole reads MOVIEHUB_ROLE, the demo seat the sign-in form
// preselects. Unknown values fall back to critic.
func defaultRole() domain.Role {
	r := domain.Role(strings.ToLower(strings.TrimSpace(os.Getenv("MOVIEHUB_ROLE"))))
	if domain.ValidRole(r) {
		return r
	}
	return domain.RoleCritic
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("moviehub " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		}
	}

	cat := catalog.Seeded()
	reports := moderation.NewStore(cat.SeedReports()...)
	sess := session.New()

	app := tui.NewApp(sess, cat, reports, defaultRole(), version)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func printHelp() {
	fmt.Print(`moviehub — movie reviews in your terminal

Usage:
  moviehub              launch the app
  moviehub --version    show version

Environment:
  MOVIEHUB_ROLE         demo seat preselected on the sign-in form
                        (user, critic, moderator, admin; default critic)
`)
}
