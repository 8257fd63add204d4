package terminal

// KeyEvent is a key press recognized in raw terminal input.
type KeyEvent int

const (
	// KeyOther is any key without a meaning for the menu.
	KeyOther KeyEvent = iota
	// KeyUp is the up arrow.
	KeyUp
	// KeyDown is the down arrow.
	KeyDown
	// KeyEnter confirms the current choice.
	KeyEnter
	// KeyCancel is Ctrl-C.
	KeyCancel
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// String returns a key name.
func (k KeyEvent) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyCancel:
		return "cancel"
	default:
		return "other"
	}
}

// Decode splits a chunk of raw terminal input into key events.
func Decode(buf []byte) []KeyEvent {
	var events []KeyEvent
	for i := 0; i < len(buf); {
		switch buf[i] {
		case '\r', '\n':
			events = append(events, KeyEnter)
			// A CR LF pair is a single Enter.
			if buf[i] == '\r' && i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
			i++
		case keyCtrlC:
			events = append(events, KeyCancel)
			i++
		case keyEsc:
			event, size := decodeEscape(buf[i:])
			events = append(events, event)
			i += size
		default:
			events = append(events, KeyOther)
			i++
		}
	}
	return events
}

// decodeEscape decodes an escape sequence at the beginning of buf and returns
// the event together with the number of consumed bytes.
func decodeEscape(buf []byte) (KeyEvent, int) {
	if len(buf) < 2 {
		return KeyOther, 1
	}
	switch buf[1] {
	case 'O':
		// SS3: ESC O <final>, sent in application cursor mode.
		if len(buf) < 3 {
			return KeyOther, 2
		}
		return arrow(buf[2]), 3
	case '[':
		// CSI: ESC [ <params> <intermediates> <final>.
		i := 2
		for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x3f {
			i++
		}
		if i == len(buf) {
			return KeyOther, i
		}
		if buf[i] < 0x40 || buf[i] > 0x7e {
			return KeyOther, i
		}
		return arrow(buf[i]), i + 1
	default:
		return KeyOther, 1
	}
}

func arrow(final byte) KeyEvent {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	default:
		return KeyOther
	}
}
