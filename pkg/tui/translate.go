package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/skycast/pkg/app"
)

// translateKey decodes a Bubble Tea key message into the core's key model.
// Keys the dashboard has no use for report ok=false and are dropped.
func translateKey(msg tea.KeyMsg) (app.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return app.KeyEvent{Code: app.KeyEnter}, true
	case tea.KeyEsc:
		return app.KeyEvent{Code: app.KeyEsc}, true
	case tea.KeyUp:
		return app.KeyEvent{Code: app.KeyUp}, true
	case tea.KeyDown:
		return app.KeyEvent{Code: app.KeyDown}, true
	case tea.KeyLeft:
		return app.KeyEvent{Code: app.KeyLeft}, true
	case tea.KeyRight:
		return app.KeyEvent{Code: app.KeyRight}, true
	case tea.KeyBackspace:
		return app.KeyEvent{Code: app.KeyBackspace}, true
	case tea.KeyDelete:
		return app.KeyEvent{Code: app.KeyDelete}, true
	case tea.KeyF1:
		return app.KeyEvent{Code: app.KeyF1}, true
	case tea.KeySpace:
		return app.KeyEvent{Code: app.KeyRune, Rune: ' ', Alt: msg.Alt}, true
	case tea.KeyCtrlC:
		return app.KeyEvent{Code: app.KeyRune, Rune: 'c', Ctrl: true}, true
	case tea.KeyCtrlL:
		return app.KeyEvent{Code: app.KeyRune, Rune: 'l', Ctrl: true}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return app.KeyEvent{}, false
		}
		return app.KeyEvent{
			Code: app.KeyRune,
			Rune: msg.Runes[0],
			Alt:  msg.Alt,
		}, true
	}
	return app.KeyEvent{}, false
}
