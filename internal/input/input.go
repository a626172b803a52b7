// internal/input/input.go
package input

import (
	"eternity-background/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller собирает события окна за кадр. Закрытие окна перехватывается,
// чтобы выход шёл тем же путём, что и Escape.
type Poller struct{}

func NewPoller() *Poller {
	ebiten.SetWindowClosingHandled(true)
	return &Poller{}
}

// Poll возвращает события текущего кадра.
func (p *Poller) Poll() []event.Event {
	var events []event.Event
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		events = append(events, event.Event{Type: event.Quit})
	}
	return events
}
