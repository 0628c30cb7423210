package effects

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const audioRate = beep.SampleRate(48000)

// mixerDeck wraps the speaker so a machine without an audio device still
// runs: a failed Init leaves the deck disabled and every cue is a no-op.
type mixerDeck struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

func newMixerDeck(log *zap.Logger, enabled bool) *mixerDeck {
	d := &mixerDeck{mixer: &beep.Mixer{}}
	if !enabled {
		return d
	}
	if err := speaker.Init(audioRate, audioRate.N(time.Millisecond*80)); err != nil {
		log.Warn("audio unavailable, running silent", zap.Error(err))
		return d
	}
	speaker.Play(d.mixer)
	d.enabled = true
	return d
}

func (d *mixerDeck) play(s beep.Streamer) {
	if !d.enabled {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	speaker.Lock()
	d.mixer.Add(s)
	speaker.Unlock()
}

// tone is a fixed-length sine oscillator with a linear fade-out tail so cues
// never end on a click.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
}

func newTone(freq float64, dur time.Duration) beep.Streamer {
	return &tone{freq: freq, total: audioRate.N(dur)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}
		env := 1.0
		if tail := t.total - t.position; tail < t.total/4 {
			env = float64(tail) / float64(t.total/4)
		}
		v := math.Sin(2*math.Pi*t.phase) * env * 0.22
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(audioRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// chord queues tones back to back as one streamer.
func chord(freqs []float64, step time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = newTone(f, step)
	}
	return beep.Seq(parts...)
}
