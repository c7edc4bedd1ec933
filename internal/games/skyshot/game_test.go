package skyshot

import (
	"slices"
	"testing"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSkyshotConfig())
	g.Reset(testRuntime(seed))
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical snapshots
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%30 == 0 {
			inputSequence[i].Set(core.ActionShoot)
		}
		if i%45 == 10 {
			inputSequence[i].AddClick(30+i%40, 12)
		}
	}
	inputSequence[200].Set(core.ActionRestart)

	run := func() []uint64 {
		g := newTestGame(12345)
		hashes := make([]uint64, 0, len(inputSequence))
		for _, in := range inputSequence {
			g.Step(in)
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	h1 := run()
	h2 := run()
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("Determinism failed at tick %d: %d != %d", i, h1[i], h2[i])
		}
	}
}

func TestGameSeedChangesLayout(t *testing.T) {
	g1 := newTestGame(1)
	g2 := newTestGame(2)

	if slices.Equal(g1.World().Obstacles(), g2.World().Obstacles()) {
		t.Error("different seeds should produce different obstacle layouts")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionShoot)
		}
		g.Step(in)
	}
	g.SetPaused(true)

	g.Reset(testRuntime(42))

	if g.World().Tick() != 0 {
		t.Errorf("Reset should clear tick, got %d", g.World().Tick())
	}
	if g.Paused() {
		t.Error("Reset should clear paused flag")
	}
	if g.Episode() != 1 {
		t.Errorf("Reset should start episode 1, got %d", g.Episode())
	}
	if len(g.World().Projectiles()) != 0 {
		t.Errorf("Reset should clear projectiles, got %d", len(g.World().Projectiles()))
	}

	// Same seed, same first layout
	fresh := newTestGame(42)
	if !slices.Equal(g.World().Obstacles(), fresh.World().Obstacles()) {
		t.Error("Reset with the same seed should reproduce the first layout")
	}
}

func TestGameRestartFromGameOver(t *testing.T) {
	g := newTestGame(42)
	g.World().Character().Pos.Y = 1000
	state := g.Step(core.NewInputFrame()).State

	if !state.GameOver || state.Won {
		t.Fatalf("expected a lost episode, got %+v", state)
	}

	before := slices.Clone(g.World().Obstacles())

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	state = g.Step(in).State

	if state.GameOver {
		t.Error("restart should start a playing episode")
	}
	if g.Episode() != 2 {
		t.Errorf("episode = %d, expected 2", g.Episode())
	}
	// Restart is followed by the tick of the same step.
	c := g.World().Character()
	if g.World().Tick() != 1 || !approx(c.Pos.X, 52) || !approx(c.Pos.Y, 50.05) {
		t.Errorf("after restart tick=%d pos=(%f, %f), expected 1 (52, 50.05)", g.World().Tick(), c.Pos.X, c.Pos.Y)
	}
	if g.World().Camera() != 0 {
		t.Errorf("camera = %f, expected 0", g.World().Camera())
	}
	if slices.Equal(before, g.World().Obstacles()) {
		t.Error("restart should draw a new obstacle layout")
	}
}

func TestGameRestartWhilePlaying(t *testing.T) {
	g := newTestGame(7)
	g.Shoot(100, 100)
	g.Restart()

	if len(g.World().Projectiles()) != 0 {
		t.Errorf("restart should clear projectiles, got %d", len(g.World().Projectiles()))
	}
	if g.World().State() != StatePlaying {
		t.Errorf("state = %v, expected playing", g.World().State())
	}
}

func TestGameClearState(t *testing.T) {
	g := newTestGame(42)
	g.World().obstacles = nil
	g.World().Character().Pos = core.Vec2{X: 1869, Y: 200}

	state := g.Step(core.NewInputFrame()).State
	if !state.GameOver || !state.Won {
		t.Errorf("expected a won episode, got %+v", state)
	}
	if state.Score != 100 {
		t.Errorf("score = %d, expected 100", state.Score)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(42)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	state := g.Step(pause).State
	if !state.Paused {
		t.Fatal("game should be paused")
	}
	if g.World().Tick() != 0 {
		t.Errorf("paused step advanced the world to tick %d", g.World().Tick())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionShoot)
	in.AddClick(40, 12)
	g.Step(in)
	if len(g.World().Projectiles()) != 0 {
		t.Errorf("shots while paused = %d, expected 0", len(g.World().Projectiles()))
	}

	g.Step(pause)
	if g.Paused() {
		t.Fatal("game should resume")
	}
	if g.World().Tick() != 1 {
		t.Errorf("tick after resume = %d, expected 1", g.World().Tick())
	}
}

func TestGamePauseRefusedWhenFinished(t *testing.T) {
	g := newTestGame(42)
	g.World().Character().Pos.Y = 1000
	g.Step(core.NewInputFrame())

	g.SetPaused(true)
	if g.Paused() {
		t.Error("a finished episode should not pause")
	}
}

func TestGameClickShoots(t *testing.T) {
	g := newTestGame(42)

	in := core.NewInputFrame()
	in.AddClick(40, 12)
	g.Step(in)

	ps := g.World().Projectiles()
	if len(ps) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(ps))
	}
	// Cell 40 is 8 pixels wide; its centre is x = 324.
	if !approx(ps[0].Pos.X, 324) || !approx(ps[0].Pos.Y, 470) {
		t.Errorf("projectile = %+v, expected (324, 470)", ps[0].Pos)
	}
}

func TestGameSpaceLeadsTheCharacter(t *testing.T) {
	g := newTestGame(42)

	in := core.NewInputFrame()
	in.Set(core.ActionShoot)
	g.Step(in)

	ps := g.World().Projectiles()
	if len(ps) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(ps))
	}
	// Centre x 65 plus 41.5 ticks at 2 px/tick.
	if !approx(ps[0].Pos.X, 148) {
		t.Errorf("projectile x = %f, expected 148", ps[0].Pos.X)
	}

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.World().Hits() != 1 {
		t.Errorf("hits = %d, expected the led shot to reach the character", g.World().Hits())
	}
	if g.World().State() != StatePlaying {
		t.Errorf("state = %v, expected playing", g.World().State())
	}
}

func TestGameApplyConfigOnRestart(t *testing.T) {
	g := newTestGame(42)

	cfg := config.DefaultSkyshotConfig()
	cfg.Obstacles.Count = 3
	g.ApplyConfig(cfg)

	if len(g.World().Obstacles()) != 10 {
		t.Errorf("staged config should not affect the running episode")
	}

	g.Restart()
	if len(g.World().Obstacles()) != 3 {
		t.Errorf("obstacles after restart = %d, expected 3", len(g.World().Obstacles()))
	}
	if g.Config().Obstacles.Count != 3 {
		t.Errorf("Config() should report the applied config")
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("skyshot") {
		t.Fatal("skyshot should be registered")
	}

	g, err := registry.Create("skyshot")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "skyshot" || g.Title() != "Skyshot" {
		t.Errorf("got %q/%q", g.ID(), g.Title())
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := newTestGame(42)
	s1 := g.Snapshot()
	g.Step(core.NewInputFrame())
	s2 := g.Snapshot()

	if s1.Hash() == s2.Hash() {
		t.Error("hash should change after a tick")
	}
	if s2.Tick != 1 || s2.State != "playing" {
		t.Errorf("snapshot = tick %d state %q, expected 1 playing", s2.Tick, s2.State)
	}
	if len(s2.ObstacleData) != 40 {
		t.Errorf("obstacle data = %d floats, expected 40", len(s2.ObstacleData))
	}
}
