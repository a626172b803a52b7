// internal/event/types.go
package event

const (
	Quit          EventType = "Quit"          // закрытие окна или Escape
	SpawnRect     EventType = "SpawnRect"     // таймер прямоугольников
	SpawnParticle EventType = "SpawnParticle" // таймер частиц
	SpawnBar      EventType = "SpawnBar"      // таймер полос
)
