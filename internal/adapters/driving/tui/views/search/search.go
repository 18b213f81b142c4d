// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/components/input"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/components/results"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/components/slider"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/components/status"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/keymap"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/messages"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/styles"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
)

// View is the search screen: postcode input, radius slider, results table
// and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PostcodeInput
	radius    *slider.Radius
	table     *results.Table
	statusbar *status.Bar

	finder driving.FinderService
	ctx    context.Context

	// seq numbers search requests; only the latest outcome is shown.
	seq uint64

	// searched is the postcode of the last submitted search. Moving the
	// slider re-runs it.
	searched string

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view with the slider at defaultRadius.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	finder driving.FinderService,
	defaultRadius float64,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	if finder != nil {
		bar.SetDatasetSize(finder.DatasetSize())
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewPostcodeInput(s),
		radius:    slider.NewRadius(s, defaultRadius),
		table:     results.NewTable(s),
		statusbar: bar,
		finder:    finder,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.CacheCleared:
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Geocode cache cleared")
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(describeError(msg.Err))
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Search):
		postcode := strings.TrimSpace(v.input.Value())
		if postcode == "" {
			v.rejectBlank()
			return v, nil
		}
		v.searched = postcode
		return v, v.performSearch(postcode)

	case key.Matches(msg, v.keymap.RadiusUp):
		v.radius.Increment()
		return v, v.researchCmd()

	case key.Matches(msg, v.keymap.RadiusDown):
		v.radius.Decrement()
		return v, v.researchCmd()

	case key.Matches(msg, v.keymap.ClearCache):
		return v, v.clearCache()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// researchCmd repeats the last search at the new radius, if there was one.
func (v *View) researchCmd() tea.Cmd {
	if v.searched == "" {
		return nil
	}
	return v.performSearch(v.searched)
}

// rejectBlank reports an empty postcode as invalid and drops any pending
// search.
func (v *View) rejectBlank() {
	v.seq++
	v.searched = ""
	v.err = domain.ErrPostcodeNotFound
	v.table.Clear()
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(describeError(v.err))
}

// performSearch starts a search and returns the command that completes it.
func (v *View) performSearch(postcode string) tea.Cmd {
	v.seq++
	seq := v.seq
	opts := domain.SearchOptions{RadiusMiles: v.radius.Miles()}
	v.statusbar.SetState(status.StateSearching)

	finder := v.finder
	ctx := v.ctx
	return func() tea.Msg {
		if finder == nil {
			return messages.SearchCompleted{Seq: seq, Err: ErrNoFinderService}
		}
		result, err := finder.Find(ctx, postcode, opts)
		return messages.SearchCompleted{Seq: seq, Result: result, Err: err}
	}
}

// clearCache empties the geocode cache.
func (v *View) clearCache() tea.Cmd {
	finder := v.finder
	return func() tea.Msg {
		if finder == nil {
			return messages.ErrorOccurred{Err: ErrNoFinderService}
		}
		finder.ClearGeocodes()
		return messages.CacheCleared{}
	}
}

// handleSearchCompleted shows the outcome of the latest search.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.seq {
		return
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.table.Clear()
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(describeError(msg.Err))
		return
	}

	v.err = nil
	v.table.SetResult(msg.Result)
	v.statusbar.SetMessage("")
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(v.table.Count())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	header := v.styles.Title.Render("Greggs Finder")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), v.radius.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(describeError(v.err)), "")
	} else {
		sections = append(sections, v.table.View(), "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.table.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Postcode returns the current input value.
func (v *View) Postcode() string {
	return v.input.Value()
}

// SetPostcode sets the input value.
func (v *View) SetPostcode(postcode string) {
	v.input.SetValue(postcode)
}

// RadiusMiles returns the slider position.
func (v *View) RadiusMiles() float64 {
	return v.radius.Miles()
}

// SetRadius moves the slider, clamped to the valid range.
func (v *View) SetRadius(miles float64) {
	v.radius.Set(miles)
}

// Result returns the displayed search result, or nil.
func (v *View) Result() *domain.SearchResult {
	return v.table.Result()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Reset clears the input, results and status.
func (v *View) Reset() {
	v.input.Focus()
	v.input.SetValue("")
	v.table.Clear()
	v.searched = ""
	v.err = nil
	v.statusbar.Clear()
}
