package app

import (
	"fmt"
	"strings"
)

// KeyAction is what the runner does with a key press.
type KeyAction uint8

const (
	// ActionQuit closes the application.
	ActionQuit KeyAction = iota
	// ActionIgnore drops the key.
	ActionIgnore
	// ActionRefresh redraws the screen with a full refresh to clear
	// ghosting.
	ActionRefresh
)

var actionNames = [...]string{
	ActionQuit:    "quit",
	ActionIgnore:  "ignore",
	ActionRefresh: "refresh",
}

func (a KeyAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseKeyAction maps a config name to an action.
func ParseKeyAction(s string) (KeyAction, error) {
	for i, name := range actionNames {
		if strings.EqualFold(name, s) {
			return KeyAction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown key action %q", s)
}

// KeyMap maps device key codes to actions. Keys not listed use Default.
type KeyMap struct {
	Default KeyAction
	Keys    map[int32]KeyAction
}

// DefaultKeyMap quits on any key.
func DefaultKeyMap() KeyMap {
	return KeyMap{Default: ActionQuit}
}

// Lookup returns the action bound to code, or Default.
func (m KeyMap) Lookup(code int32) KeyAction {
	if a, ok := m.Keys[code]; ok {
		return a
	}
	return m.Default
}
