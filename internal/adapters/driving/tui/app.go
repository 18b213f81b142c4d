package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/keymap"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/messages"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/styles"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/views/search"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	// searchView is the postcode search screen.
	searchView *search.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	radius := domain.DefaultRadiusMiles
	if ports.Settings != nil {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("Failed to load settings, using default radius: %v", err)
		} else {
			radius = settings.Search.DefaultRadiusMiles
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		searchView:  search.NewView(s, km, ports.Finder, radius),
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Greggs Finder"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.help.Width = msg.Width
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.currentView == messages.ViewHelp {
			if key.Matches(msg, a.keymap.Back) {
				a.currentView = messages.ViewSearch
			}
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		}

		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSearch {
			a.searchView.Reset()
			return a, a.searchView.Init()
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Search outcomes and blink ticks belong to the search view even while
	// help is showing.
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}
	return a.searchView.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		a.styles.Normal.Render("Type a UK postcode and press enter to list the five nearest stores."),
		a.styles.Normal.Render(fmt.Sprintf(
			"The radius moves in whole miles between %g and %g.",
			domain.MinRadiusMiles, domain.MaxRadiusMiles,
		)),
		"",
		a.help.FullHelpView(a.keymap.FullHelp()),
		"",
		a.styles.Muted.Render("[esc] back to search"),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search screen.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.searchView.SetDimensions(width, height)
}
