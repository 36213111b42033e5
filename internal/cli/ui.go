package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status output never goes to stdout: stdout carries the generated graph
// so it can be piped. Every helper here takes the stream explicitly.

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - spinner, numbers
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status message.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printStats prints the generated graph's size and whether it came from the cache.
func printStats(w io.Writer, vertices, edges int, cached bool) {
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	sep := styleDim.Render(" · ")
	fmt.Fprintln(w, "  "+
		styleNumber.Render(fmt.Sprint(vertices))+styleDim.Render(" vertices")+sep+
		styleNumber.Render(fmt.Sprint(edges))+styleDim.Render(" edges")+sep+
		statusStyle.Render(status))
}
