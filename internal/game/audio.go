package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/analog-clock/internal/config"
	"github.com/iburimskiy/analog-clock/internal/sound"
)

// Chime plays a click through the speaker. Its Click method is a Game tick hook.
type Chime struct {
	rate beep.SampleRate
}

// NewChime initializes the speaker.
func NewChime() (*Chime, error) {
	rate := beep.SampleRate(config.ClickSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	log.Debug("speaker ready", "rate", int(rate))
	return &Chime{rate: rate}, nil
}

func (t *Chime) Click() {
	speaker.Play(sound.NewClick(t.rate, config.ClickDuration, config.ClickFrequency, config.ClickVolume))
}
