package glimpse

import (
	"fmt"
	"strings"
)

type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// letters are contiguous, see KeyLetter
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
}

// KeyLetter returns the key for an ascii letter.
func KeyLetter(ch rune) (Key, bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return KeyA + Key(ch-'a'), true
	case ch >= 'A' && ch <= 'Z':
		return KeyA + Key(ch-'A'), true
	default:
		return KeyUnknown, false
	}
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + (k - KeyA)))
	}

	return fmt.Sprintf("Key(%d)", uint16(k))
}

// ParseKey parses the name of a key as returned by Key.String.
// Names are case insensitive.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for key, keyName := range keyNames {
		if key != KeyUnknown && keyName == name {
			return key, nil
		}
	}

	if runes := []rune(name); len(runes) == 1 {
		if key, ok := KeyLetter(runes[0]); ok {
			return key, nil
		}
	}

	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
