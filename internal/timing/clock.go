// internal/timing/clock.go
package timing

import "time"

// Clock — источник времени для сглаживания кадров и таймеров спавна.
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает настенное время.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock двигается только через Advance. Используется в тестах и headless-режиме.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance сдвигает часы вперёд на d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
