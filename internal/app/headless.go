// internal/app/headless.go
package app

import (
	"time"

	"eternity-background/internal/timing"
	"eternity-background/pkg/render"
)

// RunHeadless прогоняет frames кадров без окна. Часы сдвигаются ровно на 1/targetFPS
// перед каждым кадром, поэтому результат детерминирован при фиксированном seed.
// Возвращает число выполненных кадров (меньше frames, если пришёл выход).
func RunHeadless(b *Background, clock *timing.ManualClock, dst render.Surface, targetFPS, frames int) (int, error) {
	step := time.Second / time.Duration(targetFPS)
	for i := 0; i < frames; i++ {
		clock.Advance(step)
		if err := b.RunFrame(dst, nil, nil); err != nil {
			return i, err
		}
	}
	return frames, nil
}
