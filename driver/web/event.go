// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"fmt"

	"github.com/obelisk3d/obelisk/events"
)

// jsPx formats a CSS pixel length.
func jsPx(v float32) string {
	return fmt.Sprintf("%gpx", v)
}

// domKeyCode maps a KeyboardEvent.code string to an events code; keys
// outside the engine's set map to CodeUnknown.
func domKeyCode(code string) events.Code {
	if len(code) == 4 && code[:3] == "Key" {
		c := code[3]
		if c >= 'A' && c <= 'Z' {
			return events.CodeA + events.Code(c-'A')
		}
	}
	if len(code) == 6 && code[:5] == "Digit" {
		c := code[5]
		if c == '0' {
			return events.Code0
		}
		if c >= '1' && c <= '9' {
			return events.Code1 + events.Code(c-'1')
		}
	}
	switch code {
	case "Enter":
		return events.CodeEnter
	case "Escape":
		return events.CodeEscape
	case "Tab":
		return events.CodeTab
	case "Space":
		return events.CodeSpace
	case "ArrowRight":
		return events.CodeRightArrow
	case "ArrowLeft":
		return events.CodeLeftArrow
	case "ArrowDown":
		return events.CodeDownArrow
	case "ArrowUp":
		return events.CodeUpArrow
	case "ControlLeft":
		return events.CodeLeftControl
	case "ShiftLeft":
		return events.CodeLeftShift
	case "AltLeft":
		return events.CodeLeftAlt
	}
	return events.CodeUnknown
}
