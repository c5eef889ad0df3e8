package qbridge

import "math"

// Gate names used by the recognition circuit.
const (
	GateH  = "h"  // Hadamard, uniform superposition
	GateRY = "ry" // Y-axis rotation, amplitude encoding
	GateCX = "cx" // Controlled-NOT, entangling
)

// ResultLabel is the key the terminal measurement is recorded under.
const ResultLabel = "result"

// Gate is one operation in a circuit's gate list. Param only carries
// meaning for rotation gates, where it holds the rotation fraction: the
// applied angle is Param * π.
type Gate struct {
	Name   string
	Qubits []int
	Param  float64
}

// Measurement names the qubits read out at the end of a circuit and
// the label their shots are keyed under.
type Measurement struct {
	Qubits []int
	Label  string
}

// Circuit is an ordered gate program over a fixed qubit set, terminated
// by a single measurement. Circuits are immutable once built; every
// qubit index a gate references lies in [0, Qubits).
type Circuit struct {
	Qubits  int
	Gates   []Gate
	Measure Measurement
}

// CountGates returns how many gates with the given name the circuit holds.
func (c Circuit) CountGates(name string) int {
	n := 0
	for _, g := range c.Gates {
		if g.Name == name {
			n++
		}
	}
	return n
}

/*
BuildRecognitionCircuit maps a classical feature vector onto a quantum
circuit: a Hadamard on every qubit for uniform superposition, one
amplitude-encoding rotation per feature value, a linear entangling
chain over adjacent qubit pairs, and a terminal measurement of all
qubits under a single result label.

Feature values beyond the qubit count are dropped, never wrapped. The
builder is a pure function: the same inputs always produce a
structurally identical circuit.
*/
func BuildRecognitionCircuit(features []float64, qubits int) Circuit {
	gates := make([]Gate, 0, 3*qubits)

	for i := 0; i < qubits; i++ {
		gates = append(gates, Gate{Name: GateH, Qubits: []int{i}})
	}

	for i, value := range features {
		if i >= qubits {
			break
		}
		gates = append(gates, Gate{
			Name:   GateRY,
			Qubits: []int{i},
			Param:  value / math.Pi,
		})
	}

	for i := 0; i < qubits-1; i++ {
		gates = append(gates, Gate{Name: GateCX, Qubits: []int{i, i + 1}})
	}

	measured := make([]int, qubits)
	for i := range measured {
		measured[i] = i
	}

	return Circuit{
		Qubits:  qubits,
		Gates:   gates,
		Measure: Measurement{Qubits: measured, Label: ResultLabel},
	}
}
