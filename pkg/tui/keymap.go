package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap enumerates the dashboard's bindings for the help overlay. Input
// routing itself happens in the core; these exist for display only.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Settings   key.Binding
	Locations  key.Binding
	Refresh    key.Binding
	Celsius    key.Binding
	Fahrenheit key.Binding
	HourlyView key.Binding
	Scroll     key.Binding
	Redraw     key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:       key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?/F1", "toggle help")),
	Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	Locations:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "locations")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh now")),
	Celsius:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "celsius")),
	Fahrenheit: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fahrenheit")),
	HourlyView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle hourly view")),
	Scroll:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "scroll hours")),
	Redraw:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "redraw")),
}

// helpRows is the display order of the help overlay.
func helpRows() []key.Binding {
	return []key.Binding{
		keys.Help,
		keys.Settings,
		keys.Locations,
		keys.Refresh,
		keys.Celsius,
		keys.Fahrenheit,
		keys.HourlyView,
		keys.Scroll,
		keys.Redraw,
		keys.Quit,
	}
}
