package shooter

import (
	"testing"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// scriptedRNG replays fixed rolls, then returns the fallback values.
type scriptedRNG struct {
	floats        []float64
	ints          []int
	fallbackFloat float64
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallbackFloat
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	if n <= 0 || len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// quietRNG never fires, drops or spawns power-ups.
func quietRNG() *scriptedRNG {
	return &scriptedRNG{fallbackFloat: 0.999}
}

type recordingSound struct {
	cues []core.SoundCue
}

func (r *recordingSound) Play(cue core.SoundCue) {
	r.cues = append(r.cues, cue)
}

func (r *recordingSound) names() []string {
	names := make([]string, 0, len(r.cues))
	for _, c := range r.cues {
		names = append(names, c.Name)
	}
	return names
}

func (r *recordingSound) has(name string) bool {
	for _, c := range r.cues {
		if c.Name == name {
			return true
		}
	}
	return false
}

// newTestGame returns a reset game isolated from any user config file.
func newTestGame(t *testing.T) (*Game, *core.MemoryStore, *recordingSound) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	store := core.NewMemoryStore()
	sound := &recordingSound{}
	g := New(store, sound)
	g.Reset(core.DefaultConfig())
	return g, store, sound
}

// newQuietRun starts level n with rolls that never trigger anything random.
func newQuietRun(t *testing.T, n int) (*Game, *core.MemoryStore, *recordingSound) {
	t.Helper()
	g, store, sound := newTestGame(t)
	g.StartLevel(n)
	g.setRNG(quietRNG())
	return g, store, sound
}

func press(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

// tap presses the actions for one step and releases them on the next.
func tap(g *Game, actions ...core.Action) {
	g.Step(press(actions...))
	g.Step(press())
}
