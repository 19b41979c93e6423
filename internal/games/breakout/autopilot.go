package breakout

// Autopilot steers the paddle toward the ball. It drives headless runs
// and soak tests; it never reads anything a player could not see.
type Autopilot struct {
	// Offset shifts the aim point from the paddle center, in canvas units.
	Offset float64
}

// Input returns the direction flags that move the paddle under the ball.
func (a Autopilot) Input(s State) Input {
	target := s.Ball.Pos.X - s.Paddle.Width/2 + a.Offset
	diff := target - s.Paddle.X

	// Inside half a step the paddle would only overshoot.
	if diff > PaddleSpeed/2 {
		return Input{Right: true}
	}
	if diff < -PaddleSpeed/2 {
		return Input{Left: true}
	}
	return Input{}
}

// Run steps s with the autopilot until the session ends or maxTicks
// ticks have passed, and returns the final state.
func (a Autopilot) Run(s State, maxTicks uint64) State {
	for i := uint64(0); i < maxTicks && s.Phase == PhaseRunning; i++ {
		s = Step(s, a.Input(s))
	}
	return s
}
