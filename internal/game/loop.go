package game

import "time"

// Loop couples a session with the input source it is polled from.
// Frontends call Tick once per frame.
type Loop struct {
	Session *Session
	Input   InputSource
}

// Tick polls the input once and steps the session.
func (l *Loop) Tick(dt time.Duration) StepResult {
	var in InputSource = NoInput{}
	if l.Input != nil {
		in = l.Input
	}
	return l.Session.Step(in.PollDirectionalInput(), dt)
}
