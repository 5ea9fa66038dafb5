package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/skycast/pkg/components"
	"gitlab.com/tinyland/lab/skycast/pkg/theme"
)

const overlayWidth = 44

func (m Model) renderSettings(pal theme.Palette) string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)).Bold(true).Render("Settings")
	rows := []string{title, ""}

	entries := m.state.SettingsEntries()
	for i, entry := range entries {
		label := components.PadRight(entry.Label, 16)
		line := label
		if entry.Editable {
			line = fmt.Sprintf("%s‹ %s ›", label, entry.Value)
		}
		line = components.PadRight(line, overlayWidth-4)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText))
		if i == int(m.state.SettingsSelected) {
			style = style.Background(lipgloss.Color(pal.SurfaceAlt)).Bold(true)
		}
		rows = append(rows, style.Render(line))
	}

	rows = append(rows, "",
		lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupMuted)).
			Render(components.Truncate(m.state.SettingsHint(), overlayWidth-4)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupMuted)).
			Render("↑/↓ select · ←/→ change · Esc close"))
	return popupStyle(pal).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderCityPicker(pal theme.Palette) string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)).Bold(true).Render("Locations")
	queryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText))
	cursor := " "
	if m.state.AnimateUI && m.state.FrameTick%16 < 8 {
		cursor = "▌"
	}
	query := queryStyle.Render(components.PadRight("Search: "+m.state.CityQuery+cursor, overlayWidth-4))

	rows := []string{title, "", query, ""}

	recents := m.state.Settings.RecentLocations
	shown := len(recents)
	if shown > 9 {
		shown = 9
	}
	for i := 0; i < shown; i++ {
		line := fmt.Sprintf("%d. %s", i+1, components.Truncate(recents[i].ToLocation().DisplayName(), overlayWidth-10))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText))
		if i == m.state.CitySelected {
			style = style.Background(lipgloss.Color(pal.SurfaceAlt)).Bold(true)
		}
		rows = append(rows, style.Render(components.PadRight(line, overlayWidth-4)))
	}
	if shown > 0 {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Danger))
		if m.state.CitySelected == shown {
			style = style.Background(lipgloss.Color(pal.SurfaceAlt)).Bold(true)
		}
		rows = append(rows, style.Render(components.PadRight("Clear history", overlayWidth-4)))
	}

	if m.state.CityStatus != "" {
		rows = append(rows, "",
			lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupMuted)).
				Render(components.Truncate(m.state.CityStatus, overlayWidth-4)))
	}
	return popupStyle(pal).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderHelp(pal theme.Palette) string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)).Bold(true).Render("Keys")
	rows := []string{title, ""}
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupText))
	for _, binding := range helpRows() {
		h := binding.Help()
		rows = append(rows, fmt.Sprintf("%s %s",
			keyStyle.Render(components.PadRight(h.Key, 8)),
			descStyle.Render(h.Desc)))
	}
	rows = append(rows, "",
		lipgloss.NewStyle().Foreground(lipgloss.Color(pal.PopupMuted)).Render("Esc or ? to close"))
	return popupStyle(pal).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
