package qbridge

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Device is the capability surface of a QPU: status inspection,
calibration, and gated circuit execution. The orchestration layer
depends only on this interface, so a simulated backend and a physical
one are interchangeable without touching the pipeline.
*/
type Device interface {
	CheckStatus() Status
	Calibrate() error
	Execute(c Circuit) (MeasurementTable, error)
	Config() HardwareConfig
}

/*
QPU is the hardware status machine. It owns its Status value
exclusively: every transition happens inside Calibrate or Execute
under a single mutex, so concurrent callers cannot race the ready
gate. The QPU performs no numeric transformation of results; it is a
pass-through around the engine with status side effects.

The machine starts ready and moves through:
  - Ready -> Busy -> Ready on a successful execution
  - Ready -> Busy -> Error on an engine fault
  - * -> Calibrating -> Ready on a successful calibration
  - * -> Calibrating -> Error on a calibration fault

It never rests in the busy or calibrating states between calls.
*/
type QPU struct {
	mu      sync.Mutex
	status  Status
	config  HardwareConfig
	engine  Engine
	metrics *Metrics
}

// NewQPU builds a QPU in the ready state around the given engine.
func NewQPU(config HardwareConfig, engine Engine) (*QPU, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, errors.New("qpu requires an execution engine")
	}

	errnie.Info(
		"NewQPU - qubits %d, coherence %.1fus, gate fidelity %.2f, readout fidelity %.2f",
		config.Qubits,
		config.CoherenceTimeUs,
		config.GateFidelity,
		config.ReadoutFidelity,
	)

	return &QPU{
		status:  StatusReady,
		config:  config,
		engine:  engine,
		metrics: NewMetrics(),
	}, nil
}

// Config returns the immutable hardware parameter bundle.
func (q *QPU) Config() HardwareConfig { return q.config }

// Metrics returns a snapshot of the QPU's activity counters.
func (q *QPU) Metrics() MetricsSnapshot { return q.metrics.Snapshot() }

// CheckStatus reports the current status. Pure read, no side effects.
func (q *QPU) CheckStatus() Status {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.status
}

/*
Calibrate runs the engine's calibration sequence. The machine always
leaves this method in either the ready state (nil error) or the error
state (CalibrationError); it never rests in the calibrating state.
Calibrating from the ready state still runs the full sequence and ends
ready.
*/
func (q *QPU) Calibrate() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.status = StatusCalibrating
	log.Printf("qpu calibration started")

	if err := q.engine.Calibrate(); err != nil {
		q.status = StatusError
		log.Printf("qpu calibration failed: %v", err)
		return &CalibrationError{Err: err}
	}

	q.metrics.recordCalibration()
	q.status = StatusReady
	log.Printf("qpu calibration completed")
	return nil
}

/*
Execute submits a circuit to the engine, gated on the ready state. A
request made in any other state fails with NotReadyError naming that
status and changes nothing. An engine fault moves the machine to the
error state and is reported as an ExecutionFault, so the two failure
channels stay distinguishable through errors.As.
*/
func (q *QPU) Execute(c Circuit) (MeasurementTable, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.status != StatusReady {
		return nil, &NotReadyError{Status: q.status}
	}

	run := uuid.NewString()[:8]
	start := time.Now()
	q.status = StatusBusy
	log.Printf("qpu run %s: executing %d-qubit circuit, %d gates, %d shots",
		run, c.Qubits, len(c.Gates), Shots)

	table, err := q.engine.Run(c, Shots)
	if err != nil {
		q.status = StatusError
		q.metrics.recordExecution(start, 0, false)
		log.Printf("qpu run %s: execution failed: %v", run, err)
		return nil, &ExecutionFault{Err: err}
	}

	q.status = StatusReady
	q.metrics.recordExecution(start, Shots, true)
	log.Printf("qpu run %s: completed in %s", run, time.Since(start))
	return table, nil
}
