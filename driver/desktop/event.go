// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/obelisk3d/obelisk/events"
)

// glfwKeyCode maps a glfw physical key to an events code; keys outside
// the engine's set map to CodeUnknown.
func glfwKeyCode(kcode glfw.Key) events.Code {
	switch {
	case kcode >= glfw.KeyA && kcode <= glfw.KeyZ:
		return events.CodeA + events.Code(kcode-glfw.KeyA)
	case kcode >= glfw.Key1 && kcode <= glfw.Key9:
		return events.Code1 + events.Code(kcode-glfw.Key1)
	}
	switch kcode {
	case glfw.Key0:
		return events.Code0
	case glfw.KeyEnter:
		return events.CodeEnter
	case glfw.KeyEscape:
		return events.CodeEscape
	case glfw.KeyTab:
		return events.CodeTab
	case glfw.KeySpace:
		return events.CodeSpace
	case glfw.KeyRight:
		return events.CodeRightArrow
	case glfw.KeyLeft:
		return events.CodeLeftArrow
	case glfw.KeyDown:
		return events.CodeDownArrow
	case glfw.KeyUp:
		return events.CodeUpArrow
	case glfw.KeyLeftControl:
		return events.CodeLeftControl
	case glfw.KeyLeftShift:
		return events.CodeLeftShift
	case glfw.KeyLeftAlt:
		return events.CodeLeftAlt
	}
	return events.CodeUnknown
}
