// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/pacer.go
// Summary: Inter-frame pacing implementations.

package term

import "time"

// SleepPacer blocks the frame loop with time.Sleep, which already gives
// microsecond-order resolution on every platform Go supports.
type SleepPacer struct{}

// Pace sleeps for approximately d.
func (SleepPacer) Pace(d time.Duration) { time.Sleep(d) }

// NopPacer never blocks. Tests use it to single-step as fast as possible.
type NopPacer struct{}

// Pace returns immediately.
func (NopPacer) Pace(time.Duration) {}
