package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/golden-spiral/parameter"
)

// pentatonic holds major pentatonic ratios over the base pitch
var pentatonic = [...]float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}

// ChimeFrequency returns the pitch for square index
// Steps up the pentatonic scale and wraps after ChimeScaleSteps
func ChimeFrequency(index int) float64 {
	step := index % parameter.ChimeScaleSteps
	if step < 0 {
		step += parameter.ChimeScaleSteps
	}
	octave := step / len(pentatonic)
	return parameter.ChimeBaseFrequency * math.Pow(2, float64(octave)) * pentatonic[step%len(pentatonic)]
}

// NewChime returns a finite sine tone with an attack/release envelope
func NewChime(sr beep.SampleRate, index int) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, ChimeFrequency(index))
	if err != nil {
		return nil, err
	}
	total := sr.N(parameter.ChimeDuration)
	return &envelope{
		streamer: beep.Take(total, sine),
		total:    total,
		attack:   total / 10,
		gain:     parameter.ChimeVolume,
	}, nil
}

// envelope applies a linear attack and a linear release to a finite streamer
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	pos      int
	gain     float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain * e.level(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) level(pos int) float64 {
	if e.attack > 0 && pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	release := e.total - e.attack
	if release <= 0 {
		return 1
	}
	return math.Max(0, float64(e.total-pos)/float64(release))
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}
