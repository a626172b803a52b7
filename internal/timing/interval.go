// internal/timing/interval.go
package timing

import "time"

// Interval — аккумулятор времени с последнего срабатывания с фиксированным периодом.
// Без джиттера и backoff: остаток переносится на следующий кадр.
type Interval struct {
	Period  time.Duration
	elapsed time.Duration
}

func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		panic("timing: interval period must be positive")
	}
	return &Interval{Period: period}
}

// Tick добавляет прошедшее время и возвращает число полных периодов.
func (i *Interval) Tick(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	i.elapsed += elapsed
	fired := int(i.elapsed / i.Period)
	i.elapsed -= time.Duration(fired) * i.Period
	return fired
}

// Elapsed возвращает накопленное время с последнего срабатывания.
func (i *Interval) Elapsed() time.Duration { return i.elapsed }

// Reset обнуляет аккумулятор.
func (i *Interval) Reset() { i.elapsed = 0 }
