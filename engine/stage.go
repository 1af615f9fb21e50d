// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Stage is the lifecycle state of an [Engine]. It advances
// Uninitialized → Initializing → Running, oscillates between Running
// and Suspended with window visibility, and ends at Terminated.
type Stage int32

const (
	// Uninitialized is the zero state, before the platform is ready.
	Uninitialized Stage = iota

	// Initializing means GPU context creation is underway. On the web
	// platform this state persists across multiple scheduler turns
	// while the browser grants the device asynchronously.
	Initializing

	// Running produces one frame per tick.
	Running

	// Suspended pauses frame production while the window is hidden or
	// unfocused. Input continues to be recorded.
	Suspended

	// Terminated is final: resources are released and no further
	// frames are produced.
	Terminated
)

func (st Stage) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Initializing:
		return "Initializing"
	case Running:
		return "Running"
	case Suspended:
		return "Suspended"
	case Terminated:
		return "Terminated"
	}
	return "InvalidStage"
}
