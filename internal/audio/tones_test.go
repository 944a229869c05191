package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/dodge-arena/internal/game"
)

const testRate = beep.SampleRate(8000)

// drain reads s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
		d    time.Duration
	}{
		{"sine", WaveSine, 100 * time.Millisecond},
		{"square", WaveSquare, 250 * time.Millisecond},
		{"short", WaveSine, time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(t, Tone(440, tc.d, tc.wave, testRate))
			if want := testRate.N(tc.d); len(samples) != want {
				t.Errorf("got %d samples, expected %d", len(samples), want)
			}
			for i, s := range samples {
				if math.Abs(s[0]) > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v", i, s)
				}
			}
		})
	}
}

func TestSquareWaveIsBipolar(t *testing.T) {
	samples := drain(t, Tone(100, 50*time.Millisecond, WaveSquare, testRate))
	var pos, neg int
	for _, s := range samples {
		switch s[0] {
		case 1:
			pos++
		case -1:
			neg++
		default:
			t.Fatalf("square sample %v", s[0])
		}
	}
	if pos == 0 || neg == 0 {
		t.Errorf("expected both polarities, got +%d -%d", pos, neg)
	}
}

func TestDecayFadesOut(t *testing.T) {
	d := 200 * time.Millisecond
	samples := drain(t, Decay(Tone(50, d, WaveSquare, testRate), d, 10*time.Millisecond, testRate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at the start of the attack", samples[0][0])
	}
	tail := samples[len(samples)-10:]
	for _, s := range tail {
		if math.Abs(s[0]) > 0.01 {
			t.Errorf("tail sample %v should be nearly silent", s[0])
		}
	}
}

func TestDecayStopsAtItsOwnLength(t *testing.T) {
	long := Tone(440, time.Second, WaveSine, testRate)
	samples := drain(t, Decay(long, 100*time.Millisecond, 0, testRate))
	if want := testRate.N(100 * time.Millisecond); len(samples) != want {
		t.Errorf("got %d samples, expected %d", len(samples), want)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name   string
		events []game.Event
		want   beep.Streamer
	}{
		{"nothing", nil, nil},
		{"level start is silent", []game.Event{{Kind: game.EventLevelStarted}}, nil},
		{"game over", []game.Event{{Kind: game.EventGameOver}}, gameOverSound(testRate)},
		{"cleared", []game.Event{{Kind: game.EventCleared}}, clearedSound(testRate)},
		{"record wins", []game.Event{{Kind: game.EventCleared}, {Kind: game.EventNewRecord}}, recordSound(testRate)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := soundFor(tc.events, testRate)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("soundFor() = %v, expected %v", got, tc.want)
			}
			if got == nil {
				return
			}
			if g, w := len(drain(t, got)), len(drain(t, tc.want)); g != w {
				t.Errorf("cue has %d samples, expected %d", g, w)
			}
		})
	}
}

func TestCuesBeforeInit(t *testing.T) {
	c := NewCues(2, nil)
	if c.volume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", c.volume)
	}
	// Without an audio device every cue is dropped.
	c.HandleEvents([]game.Event{{Kind: game.EventGameOver}})
	c.Close()
}
