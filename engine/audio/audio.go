package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// CueID identifies a result cue
type CueID string

const (
	CueSuccess CueID = "success"
	CueFailure CueID = "failure"
	CueCancel  CueID = "cancel"
)

// Player synthesizes short tones for run outcomes. Initialization fails
// soft: without an audio device every Play is a no-op.
type Player struct {
	rate  beep.SampleRate
	ready bool
}

func NewPlayer() *Player {
	p := &Player{rate: beep.SampleRate(44100)}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err == nil {
		p.ready = true
	}
	return p
}

// Play fires the tone for a cue
func (p *Player) Play(id CueID) {
	if !p.ready {
		return
	}
	var freq float64
	var dur time.Duration
	switch id {
	case CueSuccess:
		freq, dur = 880, 150*time.Millisecond
	case CueFailure:
		freq, dur = 220, 300*time.Millisecond
	case CueCancel:
		freq, dur = 440, 100*time.Millisecond
	default:
		return
	}
	tone, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.rate.N(dur), tone))
}
