// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlist

import "github.com/cpmech/gosl/chk"

// UpdateSettings controls how often a rebuild of the neighbor list is
// considered and what additionally gates it.
type UpdateSettings struct {
	// Every: a rebuild is only considered on step multiples of Every.
	Every int
	// Delay: the minimum number of steps since the last rebuild before
	// another is considered, counted since the last rebuild (not since
	// step 0).
	Delay int
	// Check: if true, a rebuild additionally requires that some atom has
	// moved farther than half the skin distance since the last build.
	Check bool

	lastUpdateStep int
}

// NewUpdateSettings builds an UpdateSettings, panicking on an invalid
// Every or Delay.
func NewUpdateSettings(every, delay int, check bool) UpdateSettings {
	if every < 1 {
		chk.Panic("nlist: update_settings.every (%d) must be at least 1", every)
	}
	if delay < 0 {
		chk.Panic("nlist: update_settings.delay (%d) must be non-negative", delay)
	}
	return UpdateSettings{Every: every, Delay: delay, Check: check}
}

// shouldConsider reports whether step is eligible for a rebuild check at
// all, ignoring the moved-too-far condition.
func (u UpdateSettings) shouldConsider(step int) bool {
	delta := step - u.lastUpdateStep
	if delta%u.Every != 0 {
		return false
	}
	return delta >= u.Delay
}
