// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/styles"
)

// MaxPostcodeLength bounds input; the longest UK postcode is 8 characters.
const MaxPostcodeLength = 12

// PostcodeInput wraps a bubbles textinput with postcode-specific styling.
type PostcodeInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewPostcodeInput creates a new postcode input component.
func NewPostcodeInput(s *styles.Styles) *PostcodeInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. NE1 4ST"
	ti.Focus()
	ti.CharLimit = MaxPostcodeLength
	ti.Width = 20

	return &PostcodeInput{
		textinput: ti,
		styles:    s,
		width:     20,
	}
}

// Init initialises the postcode input.
func (p *PostcodeInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PostcodeInput) Update(msg tea.Msg) (*PostcodeInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the postcode input.
func (p *PostcodeInput) View() string {
	label := p.styles.Title.Render("Postcode: ")
	field := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (p *PostcodeInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PostcodeInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PostcodeInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PostcodeInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PostcodeInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the width of the input.
func (p *PostcodeInput) SetWidth(width int) {
	p.width = width
	// Postcodes are short; cap the field rather than stretching it.
	inputWidth := width - 14
	if inputWidth > 20 {
		inputWidth = 20
	}
	if inputWidth < 10 {
		inputWidth = 10
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PostcodeInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PostcodeInput) Reset() {
	p.textinput.Reset()
}
