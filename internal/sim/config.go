package sim

import "time"

// Config хранит параметры запуска демо-симуляции.
type Config struct {
	// Seed - зерно генерации мира и поведения агентов.
	// Один сид - одна и та же карта и одни и те же маршруты.
	Seed int64

	Width  int
	Height int

	Agents       int
	Periodic     bool
	UseHeightmap bool

	// TickInterval - период шага симуляции. Ноль - шагать без пауз
	// (для тестов).
	TickInterval time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		Width:        40,
		Height:       25,
		Agents:       12,
		TickInterval: 200 * time.Millisecond,
	}
}
