// Package slider provides the radius slider for the TUI.
package slider

import (
	"fmt"
	"math"
	"strings"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/styles"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// trackWidth is the number of cells in the rendered track.
const trackWidth = 25

// Radius selects a whole-mile search radius within
// [domain.MinRadiusMiles, domain.MaxRadiusMiles].
type Radius struct {
	styles *styles.Styles
	value  int
}

// NewRadius creates a slider positioned at miles, clamped to the valid range.
func NewRadius(s *styles.Styles, miles float64) *Radius {
	if s == nil {
		s = styles.DefaultStyles()
	}
	r := &Radius{styles: s}
	r.Set(miles)
	return r
}

// Miles returns the selected radius.
func (r *Radius) Miles() float64 {
	return float64(r.value)
}

// Set moves the slider to miles, rounding to the nearest whole mile.
func (r *Radius) Set(miles float64) {
	if math.IsNaN(miles) {
		miles = domain.DefaultRadiusMiles
	}
	r.value = clamp(int(math.Round(miles)))
}

// Increment widens the radius by one mile.
func (r *Radius) Increment() {
	r.value = clamp(r.value + 1)
}

// Decrement narrows the radius by one mile.
func (r *Radius) Decrement() {
	r.value = clamp(r.value - 1)
}

// View renders the slider track and current value.
func (r *Radius) View() string {
	lo, hi := int(domain.MinRadiusMiles), int(domain.MaxRadiusMiles)
	filled := (r.value - lo) * trackWidth / (hi - lo)

	track := r.styles.SliderFilled.Render(strings.Repeat("━", filled)) +
		r.styles.SliderFilled.Render("●") +
		r.styles.SliderEmpty.Render(strings.Repeat("─", trackWidth-filled))

	label := r.styles.Title.Render("Radius:   ")
	value := r.styles.Normal.Render(fmt.Sprintf(" %d miles", r.value))
	return label + track + value
}

func clamp(v int) int {
	lo, hi := int(domain.MinRadiusMiles), int(domain.MaxRadiusMiles)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
