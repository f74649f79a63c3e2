package ui

import (
	"fmt"

	"github.com/gogpu/gg"
)

// formatValue renders a signed scalar with three fraction digits.
func formatValue(v float64) string {
	return fmt.Sprintf("%+.3f", v)
}

// formatPoint renders a location with one fraction digit per axis.
func formatPoint(p gg.Point) string {
	return fmt.Sprintf("%.1f, %.1f", p.X, p.Y)
}

// formatVector renders a unit direction as signed components.
func formatVector(p gg.Point) string {
	return formatValue(p.X) + ", " + formatValue(p.Y)
}
