package app

import "unicode"

// TermEvent is the closed union of decoded terminal events this core reacts
// to. The render layer translates its library's raw input into these.
type TermEvent interface {
	termEvent()
}

// KeyCode identifies a non-character key, or KeyRune for printable input.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyDelete
	KeyF1
)

// KeyEvent is one key press.
type KeyEvent struct {
	Code  KeyCode
	Rune  rune // meaningful only when Code == KeyRune
	Ctrl  bool
	Alt   bool
	Super bool
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (KeyEvent) termEvent()    {}
func (ResizeEvent) termEvent() {}

// commandRune lowercases a bare printable key press into a single-letter
// command. Keys held with Ctrl, Alt, or Super never become commands.
func commandRune(key KeyEvent) (rune, bool) {
	if key.Code != KeyRune || key.Ctrl || key.Alt || key.Super {
		return 0, false
	}
	return unicode.ToLower(key.Rune), true
}

// isCtrl reports whether key is Ctrl plus the given letter.
func isCtrl(key KeyEvent, target rune) bool {
	return key.Ctrl && key.Code == KeyRune && unicode.ToLower(key.Rune) == target
}

// isCityRune reports whether a rune may be typed into the city query.
// Control characters and shell punctuation are rejected.
func isCityRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case ' ', '-', '\'', '’', ',', '.':
		return true
	}
	return false
}
