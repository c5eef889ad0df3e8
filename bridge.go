package qbridge

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/errnie"
)

/*
Recognizer runs classical feature vectors through the quantum pattern
recognition pipeline: readiness gating, circuit construction,
execution, and statistical decoding. It depends only on the Device
capability interface, never on a concrete backend.
*/
type Recognizer struct {
	device Device
	logger *log.Logger
}

// RecognizerOption configures a Recognizer.
type RecognizerOption func(*Recognizer)

// WithRecognizerLogger injects the structured logger the pipeline
// reports progress through.
func WithRecognizerLogger(logger *log.Logger) RecognizerOption {
	return func(r *Recognizer) {
		r.logger = logger
	}
}

func NewRecognizer(device Device, opts ...RecognizerOption) *Recognizer {
	r := &Recognizer{
		device: device,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	errnie.Info("NewRecognizer - qubits %d", device.Config().Qubits)
	return r
}

/*
Process runs one feature vector end to end and returns the decision.

When the hardware is not ready it attempts a single inline calibration
before building the circuit; a failed calibration surfaces as an
UnavailableError. Execution failures are wrapped but keep the
underlying NotReadyError or ExecutionFault reachable via errors.As.
No stage is retried; retry policy belongs to the caller.
*/
func (r *Recognizer) Process(features []float64) (Decision, error) {
	r.logger.Info("processing vision data", "features", features)

	if err := ensureReady(r.device); err != nil {
		return Decision{}, err
	}

	circuit := BuildRecognitionCircuit(features, r.device.Config().Qubits)

	table, err := r.device.Execute(circuit)
	if err != nil {
		return Decision{}, fmt.Errorf("pattern recognition failed: %w", err)
	}

	decision, err := DecodePattern(table, circuit.Measure.Label)
	if err != nil {
		return Decision{}, err
	}

	r.logger.Info("pattern recognition results",
		"identified", decision.PatternIdentified,
		"confidence", decision.Confidence,
	)
	return decision, nil
}

/*
MotionPlanner drives the movement-optimization variant of the
pipeline: the most frequent measured outcome becomes the movement
decision handed to the actuator, fire and forget.
*/
type MotionPlanner struct {
	device   Device
	actuator Actuator
	logger   *log.Logger
}

// PlannerOption configures a MotionPlanner.
type PlannerOption func(*MotionPlanner)

// WithActuator injects the actuation service that receives movement
// decisions. Defaults to a MockRobot.
func WithActuator(a Actuator) PlannerOption {
	return func(p *MotionPlanner) {
		p.actuator = a
	}
}

// WithPlannerLogger injects the structured logger the planner reports
// progress through.
func WithPlannerLogger(logger *log.Logger) PlannerOption {
	return func(p *MotionPlanner) {
		p.logger = logger
	}
}

func NewMotionPlanner(device Device, opts ...PlannerOption) *MotionPlanner {
	p := &MotionPlanner{
		device: device,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.actuator == nil {
		p.actuator = NewMockRobot(p.logger)
	}

	errnie.Info("NewMotionPlanner - qubits %d", device.Config().Qubits)
	return p
}

/*
Plan executes the movement-optimization circuit for the feature vector
and forwards the winning outcome to the actuator. The full histogram
is returned alongside the selection so callers can inspect the
measurement distribution.
*/
func (p *MotionPlanner) Plan(features []float64) (Movement, Histogram, error) {
	p.logger.Info("starting movement optimization", "features", features)

	if err := ensureReady(p.device); err != nil {
		return 0, nil, err
	}

	circuit := BuildRecognitionCircuit(features, p.device.Config().Qubits)

	table, err := p.device.Execute(circuit)
	if err != nil {
		return 0, nil, fmt.Errorf("movement optimization failed: %w", err)
	}

	movement, hist, err := DecodeMovement(table, circuit.Measure.Label)
	if err != nil {
		return 0, nil, err
	}

	p.actuator.Accept(movement)
	p.logger.Info("movement optimization complete",
		"movement", movement,
		"distribution", hist,
	)
	return movement, hist, nil
}

// ensureReady gates the pipeline on hardware readiness, attempting one
// calibration pass when the device reports anything other than ready.
func ensureReady(device Device) error {
	if device.CheckStatus() == StatusReady {
		return nil
	}
	if err := device.Calibrate(); err != nil {
		return &UnavailableError{Err: err}
	}
	return nil
}
