package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var version = "dev"

type CLI struct {
	Config    string           `short:"c" help:"Settings file path (default: $XDG_CONFIG_HOME/pomo/settings.yaml)" type:"path"`
	Theme     string           `short:"t" help:"Colour theme (default, dracula)"`
	Locale    string           `short:"l" help:"Label language (en, pt)"`
	Mode      string           `short:"m" help:"Mode to open in (focus, short, long)"`
	ReportDir string           `name:"report-dir" help:"Directory for exported PDF reports" type:"path"`
	LogFile   string           `name:"log-file" help:"Write logs to this file" type:"path"`
	Verbose   bool             `short:"v" help:"Enable debug logging"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name(config.AppName),
		kong.Description("A Pomodoro timer for the terminal."),
		kong.Vars{"version": version},
	)

	// 1. Resolve settings
	settings, err := resolveSettings(cli)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := util.SetupLogging(util.ExpandPath(settings.LogFile), cli.Verbose)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("pomo needs an interactive terminal.")
		os.Exit(1)
	}

	// 2. Open the session log. It lives in memory and ends with the process.
	ctx := context.Background()
	var log tui.SessionLog
	db, err := database.Open(ctx, config.SessionDSN)
	if err != nil {
		util.LogError("open session log", err)
	} else {
		defer db.Close()
		log = db
	}

	// 3. Start the program
	model := tui.NewMainModel(ctx, log, settings)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// resolveSettings loads the settings file and applies command-line overrides.
func resolveSettings(cli CLI) (config.Settings, error) {
	path := cli.Config
	if path == "" {
		p, err := config.SettingsPath(config.AppName)
		if err != nil {
			return config.Settings{}, err
		}
		path = p
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return config.Settings{}, err
	}
	settings = settings.Merge(config.Settings{
		Theme:     cli.Theme,
		Locale:    cli.Locale,
		ReportDir: cli.ReportDir,
		LogFile:   cli.LogFile,
		StartMode: cli.Mode,
	})
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}
