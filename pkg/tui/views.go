package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/skycast/pkg/app"
	"gitlab.com/tinyland/lab/skycast/pkg/components"
	"gitlab.com/tinyland/lab/skycast/pkg/resilience"
	"gitlab.com/tinyland/lab/skycast/pkg/theme"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() string {
	if m.state.Mode == app.ModeQuit {
		return ""
	}
	width := m.state.ViewportWidth
	pal := m.palette()

	// Overlays take the whole screen; the dashboard repaints when they
	// close.
	switch {
	case m.state.HelpOpen:
		return m.centered(pal, m.renderHelp(pal))
	case m.state.SettingsOpen:
		return m.centered(pal, m.renderSettings(pal))
	case m.state.CityPickerOpen:
		return m.centered(pal, m.renderCityPicker(pal))
	}

	switch m.state.Mode {
	case app.ModeLoading:
		return m.centered(pal, m.renderLoading(pal))
	case app.ModeError:
		return m.centered(pal, m.renderError(pal))
	case app.ModeSelectingLocation:
		return m.centered(pal, m.renderDisambiguation(pal))
	}

	var sections []string
	sections = append(sections, m.renderHeader(pal, width))
	sections = append(sections, m.renderMainRow(pal, width))
	sections = append(sections, m.renderHourly(pal, width))
	sections = append(sections, m.renderDaily(pal, width))
	sections = append(sections, m.renderStatusBar(pal, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// centered places a popup-style box in the middle of the viewport.
func (m Model) centered(pal theme.Palette, box string) string {
	return lipgloss.Place(m.state.ViewportWidth, m.height,
		lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(pal.Bottom)))
}

func (m Model) renderLoading(pal theme.Palette) string {
	frame := spinnerFrames[int(m.state.FrameTick/2)%len(spinnerFrames)]
	if !m.state.AnimateUI {
		frame = spinnerFrames[0]
	}
	body := fmt.Sprintf("%s %s", frame, m.state.LoadingMessage)
	return popupStyle(pal).Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText)).Render(body))
}

func (m Model) renderError(pal theme.Palette) string {
	msg := m.state.LastError
	if msg == "" {
		msg = "Something went wrong"
	}
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Danger)).Bold(true).Render("Error")
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText)).Render(msg)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupMuted)).Render("r retry · l locations · q quit")
	return popupStyle(pal).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}

func (m Model) renderDisambiguation(pal theme.Palette) string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)).Bold(true).
		Render("Did you mean")
	rows := []string{title, ""}
	numStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent))
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText))
	for i, loc := range m.state.PendingLocations {
		rows = append(rows, fmt.Sprintf("%s %s",
			numStyle.Render(fmt.Sprintf("%d.", i+1)),
			rowStyle.Render(loc.DisplayName())))
	}
	rows = append(rows, "",
		lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupMuted)).
			Render("Press a number to choose, Esc to quit"))
	return popupStyle(pal).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderHeader(pal theme.Palette, width int) string {
	name := "No location"
	if m.state.SelectedLocation != nil {
		name = m.state.SelectedLocation.DisplayName()
	}
	left := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)).Bold(true).Render("Skycast") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Text)).Render("  "+name)

	right := m.freshnessBadge(pal)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(lipgloss.Color(pal.Surface)).Width(width).Render(line)
}

func (m Model) freshnessBadge(pal theme.Palette) string {
	meta := m.state.RefreshMeta
	state := resilience.EvaluateFreshness(meta.LastSuccess, meta.ConsecutiveFailures, m.state.Now())
	color := pal.Success
	switch state {
	case resilience.Stale:
		color = pal.Warning
	case resilience.Offline:
		color = pal.Danger
	}
	label := state.String()
	if age, ok := meta.Age(m.state.Now()); ok {
		label = fmt.Sprintf("%s · %s ago", label, shortDuration(age))
	}
	if m.state.FetchInFlight {
		label = "Fetching · " + label
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("● " + label)
}

func (m Model) renderStatusBar(pal theme.Palette, width int) string {
	hints := "?:help  s:settings  l:locations  r:refresh  v:view  q:quit"
	line := components.Truncate(hints, width)
	if retryIn, ok := m.state.RefreshMeta.RetryIn(m.state.Now()); ok {
		retry := fmt.Sprintf("retry in %s  ", shortDuration(retryIn))
		line = components.Truncate(retry+hints, width)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.MutedText)).
		Background(lipgloss.Color(pal.Surface)).
		Width(width).
		Render(line)
}

func popupStyle(pal theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.PopupBorder)).
		Background(lipgloss.Color(pal.PopupSurface)).
		Padding(1, 2)
}

func panelStyle(pal theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.Border)).
		Padding(0, 1)
}

// weatherCategory picks the condition family driving the auto theme and
// the particle layer.
func weatherCategory(s *app.AppState) weather.Category {
	if s.Weather == nil {
		return weather.CategoryUnknown
	}
	return weather.CodeCategory(s.Weather.Current.WeatherCode)
}

func shortDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
