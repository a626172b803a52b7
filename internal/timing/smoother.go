// internal/timing/smoother.go
package timing

import "time"

const (
	// MinElapsed ограничивает снизу время кадра, чтобы 1/elapsed оставался конечным.
	MinElapsed = time.Microsecond
	// MaxElapsed ограничивает сверху: мгновенный FPS не опускается ниже 1.
	MaxElapsed = time.Second
)

// Smoother переводит время между кадрами в безразмерный множитель dt,
// нормированный на целевой FPS. Мгновенный FPS усредняется по окну фиксированной длины.
type Smoother struct {
	clock     Clock
	targetFPS float64
	history   []float64 // кольцевой буфер, всегда полный
	next      int       // индекс самого старого значения
	last      time.Time
	dt        float64
	fps       float64
}

// NewSmoother создаёт сглаживатель. Окно заполняется targetFPS, чтобы первые
// кадры не были перекошены, а отсчёт времени начинается с момента создания.
func NewSmoother(targetFPS, window int, clock Clock) *Smoother {
	if targetFPS <= 0 {
		panic("timing: targetFPS must be positive")
	}
	if window <= 0 {
		panic("timing: window must be positive")
	}
	history := make([]float64, window)
	for i := range history {
		history[i] = float64(targetFPS)
	}
	return &Smoother{
		clock:     clock,
		targetFPS: float64(targetFPS),
		history:   history,
		last:      clock.Now(),
		dt:        1,
		fps:       float64(targetFPS),
	}
}

// Sample замеряет время с прошлого вызова и возвращает новый dt.
func (s *Smoother) Sample() float64 {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now

	if elapsed < MinElapsed {
		elapsed = MinElapsed
	} else if elapsed > MaxElapsed {
		elapsed = MaxElapsed
	}

	// FIFO: самое старое значение вытесняется новым
	s.history[s.next] = 1 / elapsed.Seconds()
	s.next = (s.next + 1) % len(s.history)

	var sum float64
	for _, f := range s.history {
		sum += f
	}
	s.fps = sum / float64(len(s.history))
	s.dt = s.targetFPS / s.fps
	return s.dt
}

// DT возвращает результат последнего Sample (1 до первого вызова).
func (s *Smoother) DT() float64 { return s.dt }

// FPS возвращает усреднённый FPS по окну.
func (s *Smoother) FPS() float64 { return s.fps }

// Window возвращает копию окна в порядке от старых значений к новым.
func (s *Smoother) Window() []float64 {
	out := make([]float64, 0, len(s.history))
	out = append(out, s.history[s.next:]...)
	return append(out, s.history[:s.next]...)
}
