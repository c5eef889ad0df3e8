package qbridge

import "github.com/charmbracelet/log"

// Actuator receives a movement decision. Fire and forget: the
// middleware never consumes a response from the actuation side.
type Actuator interface {
	Accept(m Movement)
}

// MockRobot stands in for the robot actuation service when no hardware
// is attached. It logs each decision and keeps them for inspection.
type MockRobot struct {
	logger *log.Logger
	moves  []Movement
}

func NewMockRobot(logger *log.Logger) *MockRobot {
	if logger == nil {
		logger = log.Default()
	}
	return &MockRobot{logger: logger}
}

// Accept records and logs the movement decision.
func (r *MockRobot) Accept(m Movement) {
	r.moves = append(r.moves, m)
	r.logger.Info("mock robot executing movement decision", "movement", m)
}

// Moves returns every decision received so far, in arrival order.
func (r *MockRobot) Moves() []Movement { return r.moves }
