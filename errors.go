package qbridge

import "fmt"

/*
NotReadyError reports an execution request made while the hardware was
not in the ready state. It carries the status that blocked the request
so callers can decide whether a calibration pass is worth attempting.
The status machine is left unchanged when this error is returned.
*/
type NotReadyError struct {
	Status Status
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("qpu not ready, current status: %s", e.Status)
}

/*
CalibrationError reports a calibration sequence that could not restore
the ready state. The hardware is left in the error state.
*/
type CalibrationError struct {
	Err error
}

func (e *CalibrationError) Error() string {
	return fmt.Sprintf("calibration failed: %v", e.Err)
}

func (e *CalibrationError) Unwrap() error { return e.Err }

/*
ExecutionFault reports a failure inside the execution engine itself.
It is distinct from NotReadyError: the request passed the readiness
gate, the engine faulted while running, and the hardware has moved to
the error state.
*/
type ExecutionFault struct {
	Err error
}

func (e *ExecutionFault) Error() string {
	return fmt.Sprintf("circuit execution failed: %v", e.Err)
}

func (e *ExecutionFault) Unwrap() error { return e.Err }

/*
DecodeError marks a malformed or empty measurement table. It signals a
broken contract between the engine adapter and the decoders rather
than a transient hardware condition, so it is never worth retrying.
*/
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "cannot decode measurements: " + e.Reason
}

// UnavailableError is returned by the orchestration layer when an
// inline calibration attempt could not bring the hardware back up.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("qpu unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
