package geomorph

// Key codes as reported by browsers (KeyboardEvent.keyCode). Frontends
// translate their native key events into these.
const (
	CodeArrowLeft  = 37
	CodeArrowUp    = 38
	CodeArrowRight = 39
	CodeArrowDown  = 40
	CodeDigit0     = 48
	CodeA          = 65
	CodeD          = 68
	CodeF          = 70
	CodeR          = 82
)

// KeyMap maps raw key codes to inputs.
type KeyMap map[int]Input

// DefaultKeyMap returns arrows to navigate, 0 to reset, D to delete and
// F / R for flip / rotate.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CodeArrowLeft:  InputLeft,
		CodeArrowUp:    InputUp,
		CodeArrowRight: InputRight,
		CodeArrowDown:  InputDown,
		CodeDigit0:     InputReset,
		CodeD:          InputDelete,
		CodeF:          InputFlip,
		CodeR:          InputRotate,
	}
}

// Lookup returns the input bound to `code`.
func (k KeyMap) Lookup(code int) (Input, bool) {
	in, ok := k[code]
	if !ok || in == InputNone {
		return InputNone, false
	}
	return in, true
}
