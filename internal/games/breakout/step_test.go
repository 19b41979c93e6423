package breakout

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Canvas of an 80x24 terminal.
var testCanvas = Canvas{Width: 640, Height: 368}

func newTestState(t *testing.T, columns, rows int, mode HitWidthMode) State {
	t.Helper()
	cfg := config.SessionConfig{Rows: rows, Columns: columns, BallSpeed: 4}
	s, err := NewState(testCanvas, cfg, mode, 0, NewSimpleRNG(42))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func TestLayoutBricksInsideCanvas(t *testing.T) {
	for rows := 1; rows <= 10; rows++ {
		for cols := 1; cols <= 20; cols++ {
			cfg := config.SessionConfig{Rows: rows, Columns: cols, BallSpeed: 4}
			l, err := NewLayout(testCanvas, cfg)
			if err != nil {
				t.Fatalf("NewLayout(%d rows, %d cols): %v", rows, cols, err)
			}
			g := l.Grid()
			if g.Columns() != cols || g.Rows() != rows {
				t.Fatalf("grid is %dx%d, want %dx%d", g.Columns(), g.Rows(), cols, rows)
			}

			for c := range cols {
				for r := range rows {
					b := g[c][r]
					if b.X < 0 || b.X+l.BrickWidth > testCanvas.Width {
						t.Errorf("%dx%d: brick (%d,%d) x=%g w=%g outside canvas", cols, rows, c, r, b.X, l.BrickWidth)
					}
					if b.Y < 0 || b.Y+BrickHeight > testCanvas.Height {
						t.Errorf("%dx%d: brick (%d,%d) y=%g outside canvas", cols, rows, c, r, b.Y)
					}
					if !b.Active() {
						t.Errorf("%dx%d: brick (%d,%d) should start active", cols, rows, c, r)
					}
					if c > 0 && g[c-1][r].X+l.BrickWidth >= b.X {
						t.Errorf("%dx%d: bricks (%d,%d) and (%d,%d) overlap", cols, rows, c-1, r, c, r)
					}
				}
			}
		}
	}
}

func TestLayoutRejectsSmallCanvas(t *testing.T) {
	cfg := config.DefaultSessionConfig()

	tests := []struct {
		name   string
		canvas Canvas
	}{
		{"empty", Canvas{}},
		{"narrower than paddle", Canvas{Width: 140, Height: 368}},
		{"bricks reach ball", Canvas{Width: 640, Height: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLayout(tt.canvas, cfg); err == nil {
				t.Error("expected error")
			}
		})
	}

	cfg.Columns = 100
	if _, err := NewLayout(testCanvas, cfg); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}

func TestResetBallSpeedAndAngle(t *testing.T) {
	cfg := config.SessionConfig{Rows: 3, Columns: 5, BallSpeed: 6.5}
	rng := NewSimpleRNG(7)

	for i := range 200 {
		s, err := NewState(testCanvas, cfg, HitWidthSlot, 0, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Ball.Speed(); math.Abs(got-cfg.BallSpeed) > 1e-9 {
			t.Fatalf("reset %d: speed = %v, want %v", i, got, cfg.BallSpeed)
		}
		if s.Ball.Vel.Y >= 0 {
			t.Fatalf("reset %d: ball should launch upward, vy = %v", i, s.Ball.Vel.Y)
		}
		angle := math.Atan2(-s.Ball.Vel.Y, s.Ball.Vel.X)
		if angle < MinLaunchAngle-1e-9 || angle >= MinLaunchAngle+LaunchSpread {
			t.Fatalf("reset %d: launch angle %v outside [60°, 120°)", i, angle*180/math.Pi)
		}
		if s.Ball.Pos != (core.Vec2{X: 320, Y: 338}) {
			t.Fatalf("reset %d: ball starts at %v", i, s.Ball.Pos)
		}
		if s.Paddle.X != 245 {
			t.Fatalf("reset %d: paddle x = %v, want 245", i, s.Paddle.X)
		}
	}
}

func TestStepClearsSingleBrickAndWins(t *testing.T) {
	s := newTestState(t, 1, 1, HitWidthSlot)
	s.Ball.Pos = core.Vec2{X: 100, Y: 40}
	s.Ball.Vel = core.Vec2{X: 2, Y: -3}

	next := Step(s, Input{})

	if next.Score != 1 {
		t.Errorf("Score = %d, want 1", next.Score)
	}
	if next.HighScore != 1 {
		t.Errorf("HighScore = %d, want 1", next.HighScore)
	}
	if next.Phase != PhaseWon {
		t.Errorf("Phase = %v, want won", next.Phase)
	}
	if next.Bricks[0][0].Active() {
		t.Error("brick should be cleared")
	}
	if !s.Bricks[0][0].Active() {
		t.Error("Step must not modify its input state")
	}
}

func TestStepLosesWhenBallPassesFloor(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	s.Ball.Pos = core.Vec2{X: 50, Y: testCanvas.Height - BallRadius + 1}
	s.Ball.Vel = core.Vec2{X: 1, Y: 3}

	next := Step(s, Input{})
	if next.Phase != PhaseLost {
		t.Fatalf("Phase = %v, want lost", next.Phase)
	}
	if next.Ball.Pos != s.Ball.Pos {
		t.Error("ball should not move on the losing tick")
	}

	// The floor check comes before the paddle bounce.
	s.Ball.Pos.X = s.Paddle.X + s.Paddle.Width/2
	if next := Step(s, Input{}); next.Phase != PhaseLost {
		t.Errorf("Phase = %v with paddle under ball, want lost", next.Phase)
	}
}

func TestStepReflectsOffLeftWall(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	s.Ball.Pos = core.Vec2{X: BallRadius - 1, Y: 200}
	s.Ball.Vel = core.Vec2{X: -3, Y: -2}

	next := Step(s, Input{})

	if next.Ball.Vel.X <= 0 {
		t.Errorf("vx = %v, want positive", next.Ball.Vel.X)
	}
	if next.Ball.Pos.X < 0 || next.Ball.Pos.X > testCanvas.Width {
		t.Errorf("ball x = %v outside canvas", next.Ball.Pos.X)
	}
	if next.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want running", next.Phase)
	}
}

func TestStepReflectsOffRightWallAndCeiling(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	s.Ball.Pos = core.Vec2{X: testCanvas.Width - BallRadius - 2, Y: BallRadius + 3}
	s.Ball.Vel = core.Vec2{X: 2, Y: -2}

	next := Step(s, Input{})
	if next.Ball.Vel.X >= 0 {
		t.Errorf("vx = %v, want negative", next.Ball.Vel.X)
	}
	if next.Ball.Vel.Y <= 0 {
		t.Errorf("vy = %v, want positive", next.Ball.Vel.Y)
	}
}

func TestStepBouncesOffPaddle(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	x := s.Paddle.X + s.Paddle.Width/2
	s.Ball.Pos = core.Vec2{X: x, Y: testCanvas.Height - BallRadius - 5}
	s.Ball.Vel = core.Vec2{X: 0, Y: 3}

	next := Step(s, Input{})
	if next.Phase != PhaseRunning {
		t.Fatalf("Phase = %v, want running", next.Phase)
	}
	if next.Ball.Vel.Y >= 0 {
		t.Errorf("vy = %v, want negative after paddle bounce", next.Ball.Vel.Y)
	}
	if next = Step(next, Input{}); next.Phase != PhaseRunning {
		t.Errorf("Phase = %v on the tick after the bounce, want running", next.Phase)
	}
}

func TestStepMissesPaddleEdge(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	// Exactly on the left edge is not strictly inside.
	s.Ball.Pos = core.Vec2{X: s.Paddle.X, Y: testCanvas.Height - BallRadius - 5}
	s.Ball.Vel = core.Vec2{X: 0, Y: 3}

	next := Step(s, Input{})
	if next.Ball.Vel.Y <= 0 {
		t.Fatalf("vy = %v, ball on the paddle edge should not bounce", next.Ball.Vel.Y)
	}
	if next = Step(next, Input{}); next.Phase != PhaseLost {
		t.Errorf("Phase = %v, want lost", next.Phase)
	}
}

func TestDetectMultipleHitsInOnePass(t *testing.T) {
	// With two columns the slot-wide hit boxes overlap by 5 units around
	// x=327, so one pass can clear both bricks.
	s := newTestState(t, 2, 1, HitWidthSlot)
	ball := Ball{Pos: core.Vec2{X: 327, Y: 40}, Vel: core.Vec2{X: 1, Y: -3}, Radius: BallRadius}

	res := Detect(ball, s.Bricks, s.HitWidth)
	if res.ScoreDelta != 2 {
		t.Fatalf("ScoreDelta = %d, want 2", res.ScoreDelta)
	}
	if res.Ball.Vel.Y != -3 {
		t.Errorf("vy = %v, two hits should cancel out", res.Ball.Vel.Y)
	}
	if !res.AllCleared {
		t.Error("AllCleared should be true")
	}
	if s.Bricks.CountActive() != 2 {
		t.Error("Detect must not modify the input grid")
	}

	// The drawn width leaves a gap, so only the second brick is hit.
	s = newTestState(t, 2, 1, HitWidthBrick)
	res = Detect(ball, s.Bricks, s.HitWidth)
	if res.ScoreDelta != 1 {
		t.Fatalf("brick width: ScoreDelta = %d, want 1", res.ScoreDelta)
	}
	if res.Ball.Vel.Y != 3 {
		t.Errorf("brick width: vy = %v, want 3", res.Ball.Vel.Y)
	}
	if !res.Bricks[0][0].Active() || res.Bricks[1][0].Active() {
		t.Error("brick width: only column 1 should be cleared")
	}
}

func TestDetectSkipsClearedBricks(t *testing.T) {
	s := newTestState(t, 1, 2, HitWidthSlot)
	s.Bricks[0][0].Status = BrickCleared
	ball := Ball{Pos: core.Vec2{X: 100, Y: 40}, Vel: core.Vec2{Y: -3}, Radius: BallRadius}

	res := Detect(ball, s.Bricks, s.HitWidth)
	if res.ScoreDelta != 0 || res.Ball.Vel.Y != -3 {
		t.Errorf("cleared brick was hit: delta=%d vy=%v", res.ScoreDelta, res.Ball.Vel.Y)
	}
	if res.AllCleared {
		t.Error("second row is still active")
	}
}

func TestStepWonBeatsLost(t *testing.T) {
	s := newTestState(t, 2, 1, HitWidthSlot)
	floorY := testCanvas.Height - 25
	s.Bricks[0][0].Y = floorY
	s.Bricks[1][0].Y = floorY
	// Two hits leave vy pointing down past the floor.
	s.Ball.Pos = core.Vec2{X: 327, Y: testCanvas.Height - 15}
	s.Ball.Vel = core.Vec2{X: 0, Y: 6}

	if next := Step(s, Input{}); next.Phase != PhaseWon {
		t.Errorf("Phase = %v, want won", next.Phase)
	}
}

func TestStepScoresOnLosingTick(t *testing.T) {
	s := newTestState(t, 2, 1, HitWidthBrick)
	s.Bricks[0][0].Y = testCanvas.Height - 25
	// The hit sends the ball down, and the next position is past the floor.
	s.Ball.Pos = core.Vec2{X: 100, Y: testCanvas.Height - 15}
	s.Ball.Vel = core.Vec2{X: 0, Y: -6}

	next := Step(s, Input{})
	if next.Phase != PhaseLost {
		t.Fatalf("Phase = %v, want lost", next.Phase)
	}
	if next.Score != 1 || next.HighScore != 1 {
		t.Errorf("score = %d, high score = %d, want 1 and 1", next.Score, next.HighScore)
	}
	if next.Bricks[0][0].Active() {
		t.Error("hit brick should be cleared")
	}
	if !next.Bricks[1][0].Active() {
		t.Error("other brick should stay active")
	}
}

func TestStepKeepsPaddleInBounds(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		s := newTestState(t, 8, 5, HitWidthSlot)
		rng := NewSimpleRNG(seed)
		maxX := s.Canvas.Width - s.Paddle.Width

		for i := 0; i < 5000 && s.Phase == PhaseRunning; i++ {
			r := rng.Next() >> 60
			s = Step(s, Input{Left: r&1 != 0, Right: r&2 != 0})
			if s.Paddle.X < 0 || s.Paddle.X > maxX {
				t.Fatalf("seed %d tick %d: paddle x = %v outside [0, %v]", seed, i, s.Paddle.X, maxX)
			}
		}
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	rng := NewSimpleRNG(99)

	for i := range 2000 {
		r := rng.Next() >> 60
		in := Input{Left: r&1 != 0, Right: r&2 != 0}
		s.Paddle.Move(in, s.Canvas)
		if s.Paddle.X < 0 || s.Paddle.X > s.Canvas.Width-s.Paddle.Width {
			t.Fatalf("move %d: paddle x = %v out of bounds", i, s.Paddle.X)
		}
	}

	s.Paddle.X = s.Paddle.MaxX(s.Canvas) - 3
	s.Paddle.Move(Input{Right: true}, s.Canvas)
	if s.Paddle.X != s.Paddle.MaxX(s.Canvas) {
		t.Errorf("paddle x = %v, want clamped to %v", s.Paddle.X, s.Paddle.MaxX(s.Canvas))
	}

	s.Paddle.X = 2
	s.Paddle.Move(Input{Left: true}, s.Canvas)
	if s.Paddle.X != 0 {
		t.Errorf("paddle x = %v, want 0", s.Paddle.X)
	}
}

func TestPaddleRightWinsTies(t *testing.T) {
	p := NewPaddle(testCanvas)
	start := p.X
	p.Move(Input{Left: true, Right: true}, testCanvas)
	if p.X != start+PaddleSpeed {
		t.Errorf("paddle x = %v, want %v", p.X, start+PaddleSpeed)
	}
}

func TestTerminalStateIsIdempotent(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	s.Ball.Pos = core.Vec2{X: 50, Y: testCanvas.Height - BallRadius + 1}
	s.Ball.Vel = core.Vec2{X: 1, Y: 3}

	lost := Step(s, Input{})
	if lost.Phase != PhaseLost {
		t.Fatalf("Phase = %v, want lost", lost.Phase)
	}

	next := lost
	for range 10 {
		next = Step(next, Input{Right: true})
	}
	if !reflect.DeepEqual(next, lost) {
		t.Error("stepping a finished session changed its state")
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	pilot := Autopilot{}

	prevScore, prevHigh := 0, 0
	for i := range 20000 {
		s = Step(s, pilot.Input(s))
		if s.Score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prevScore, s.Score)
		}
		if s.HighScore < prevHigh || s.HighScore < s.Score {
			t.Fatalf("tick %d: high score %d, score %d, previous high %d", i, s.HighScore, s.Score, prevHigh)
		}
		prevScore, prevHigh = s.Score, s.HighScore
		if s.Phase != PhaseRunning {
			break
		}
	}
}

func TestAutopilotKeepsBallInPlay(t *testing.T) {
	s := newTestState(t, 8, 5, HitWidthSlot)
	s = Autopilot{}.Run(s, 5000)

	if s.Phase == PhaseLost {
		t.Errorf("autopilot lost after %d ticks", s.Tick)
	}
	if s.Score == 0 {
		t.Error("autopilot should clear at least one brick in 5000 ticks")
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultSessionConfig()
		s, err := NewState(testCanvas, cfg, HitWidthSlot, 0, NewSimpleRNG(12345))
		if err != nil {
			t.Fatal(err)
		}
		s = Autopilot{Offset: 20}.Run(s, 3000)
		return NewSnapshot(s)
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestParseHitWidth(t *testing.T) {
	tests := []struct {
		in      string
		want    HitWidthMode
		wantErr bool
	}{
		{"", HitWidthSlot, false},
		{"slot", HitWidthSlot, false},
		{"brick", HitWidthBrick, false},
		{"wide", HitWidthSlot, true},
	}

	for _, tt := range tests {
		got, err := ParseHitWidth(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHitWidth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseHitWidth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
