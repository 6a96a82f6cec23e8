package sshserver

import "unicode/utf8"

type action int

const (
	actNone action = iota
	actUp
	actDown
	actLeft
	actRight
	actToggle
	actRadiusUp
	actRadiusDown
	actRegen
	actQuit
)

// parseInput converts raw session bytes into actions. Handles arrow key
// escape sequences, hjkl, space, +/-, n, q, and Ctrl-C.
func parseInput(data []byte) []action {
	var actions []action
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, actUp)
			case 'B':
				actions = append(actions, actDown)
			case 'C':
				actions = append(actions, actRight)
			case 'D':
				actions = append(actions, actLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'k', 'K':
			actions = append(actions, actUp)
		case 'j', 'J':
			actions = append(actions, actDown)
		case 'h', 'H':
			actions = append(actions, actLeft)
		case 'l', 'L':
			actions = append(actions, actRight)
		case ' ':
			actions = append(actions, actToggle)
		case '+', '=':
			actions = append(actions, actRadiusUp)
		case '-', '_':
			actions = append(actions, actRadiusDown)
		case 'n', 'N':
			actions = append(actions, actRegen)
		case 'q', 'Q':
			actions = append(actions, actQuit)
		case 3: // Ctrl-C
			actions = append(actions, actQuit)
		}
		i += size
	}
	return actions
}
