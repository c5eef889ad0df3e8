package qbridge

/*
Status represents the operational state of the QPU hardware.
This is used to track the current mode of the hardware status machine
as it transitions between states in response to calibration and
execution requests.
*/
type Status int

const (
	StatusReady       Status = iota // Accepting circuits
	StatusBusy                      // Executing a circuit
	StatusCalibrating               // Running a calibration sequence
	StatusError                     // Faulted, requires calibration
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusBusy:
		return "busy"
	case StatusCalibrating:
		return "calibrating"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
