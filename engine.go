package qbridge

// Shots is the fixed repetition count every engine must support.
const Shots = 100

// Shot is one measured outcome, one bit per measured qubit, qubit 0
// first.
type Shot []uint8

// Encode packs the shot into its integer outcome, qubit 0 in the least
// significant bit.
func (s Shot) Encode() Movement {
	var m Movement
	for i, bit := range s {
		if bit == 1 {
			m |= 1 << i
		}
	}
	return m
}

// MeasurementTable holds per-shot outcomes keyed by result label.
type MeasurementTable map[string][]Shot

/*
Engine is the execution contract shared by the simulated and physical
backends. Run executes the circuit for the given number of repetitions
and returns outcomes keyed by the circuit's result label. Calibrate
performs whatever tune-up the backend needs to reach a runnable state.

The orchestration layer never depends on a concrete engine, so the two
kinds of backend are interchangeable behind the QPU.
*/
type Engine interface {
	Run(c Circuit, repetitions int) (MeasurementTable, error)
	Calibrate() error
}
