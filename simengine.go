package qbridge

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
)

// maxSimQubits caps the dense state vector at 2^24 amplitudes.
const maxSimQubits = 24

/*
SimEngine is a dense state-vector simulator behind the Engine contract.
It exists so the middleware runs end to end without hardware: gates are
applied as amplitude transforms and every shot is sampled from the
final |amplitude|² distribution via cumulative probability, collapsing
the state the way a measurement would.
*/
type SimEngine struct {
	rng *rand.Rand
}

// NewSimEngine returns a simulator seeded from the supplied value so
// test runs can pin their sampling. A zero seed picks a random stream.
func NewSimEngine(seed uint64) *SimEngine {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &SimEngine{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Calibrate is a no-op for the simulator, there is nothing to tune.
func (se *SimEngine) Calibrate() error { return nil }

// Run evolves the circuit's state vector and samples the requested
// number of shots from the final distribution.
func (se *SimEngine) Run(c Circuit, repetitions int) (MeasurementTable, error) {
	if c.Qubits <= 0 || c.Qubits > maxSimQubits {
		return nil, fmt.Errorf("simulator supports 1..%d qubits, circuit has %d", maxSimQubits, c.Qubits)
	}
	if repetitions <= 0 {
		return nil, fmt.Errorf("repetitions must be positive, got %d", repetitions)
	}
	if c.Measure.Label == "" || len(c.Measure.Qubits) == 0 {
		return nil, fmt.Errorf("circuit has no terminal measurement")
	}

	state, err := se.evolve(c)
	if err != nil {
		return nil, err
	}

	probs := make([]float64, len(state))
	total := 0.0
	for i, amplitude := range state {
		p := cmplx.Abs(amplitude)
		probs[i] = p * p
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}

	shots := make([]Shot, repetitions)
	for s := range shots {
		shots[s] = se.sample(probs, c.Measure.Qubits)
	}

	return MeasurementTable{c.Measure.Label: shots}, nil
}

// evolve applies the gate list to the |0...0⟩ state.
func (se *SimEngine) evolve(c Circuit) ([]complex128, error) {
	state := make([]complex128, 1<<c.Qubits)
	state[0] = 1

	for _, g := range c.Gates {
		for _, q := range g.Qubits {
			if q < 0 || q >= c.Qubits {
				return nil, fmt.Errorf("gate %s references qubit %d outside [0,%d)", g.Name, q, c.Qubits)
			}
		}
		switch g.Name {
		case GateH:
			applySingle(state, g.Qubits[0], hadamard())
		case GateRY:
			applySingle(state, g.Qubits[0], rotationY(g.Param*math.Pi))
		case GateCX:
			if len(g.Qubits) != 2 {
				return nil, fmt.Errorf("cx gate needs a control and a target, got %d qubits", len(g.Qubits))
			}
			applyCNOT(state, g.Qubits[0], g.Qubits[1])
		default:
			return nil, fmt.Errorf("unsupported gate %q", g.Name)
		}
	}

	return state, nil
}

// sample draws one shot from the outcome distribution.
func (se *SimEngine) sample(probs []float64, measured []int) Shot {
	r := se.rng.Float64()

	cumulative := 0.0
	outcome := len(probs) - 1
	for i, p := range probs {
		cumulative += p
		if r <= cumulative {
			outcome = i
			break
		}
	}

	bits := make(Shot, len(measured))
	for i, q := range measured {
		bits[i] = uint8((outcome >> q) & 1)
	}
	return bits
}

type singleGate [2][2]complex128

func hadamard() singleGate {
	// H = 1/√2 * [1  1]
	//            [1 -1]
	h := complex(1/math.Sqrt2, 0)
	return singleGate{{h, h}, {h, -h}}
}

func rotationY(theta float64) singleGate {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	return singleGate{{cos, -sin}, {sin, cos}}
}

// applySingle applies a 2x2 unitary to one qubit across the whole
// state vector, pairing each amplitude with its partner on the other
// side of the qubit's bit.
func applySingle(state []complex128, qubit int, u singleGate) {
	mask := 1 << qubit
	for i := range state {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a, b := state[i], state[j]
		state[i] = u[0][0]*a + u[0][1]*b
		state[j] = u[1][0]*a + u[1][1]*b
	}
}

// applyCNOT swaps the target-bit amplitude pair wherever the control
// bit is set.
func applyCNOT(state []complex128, control, target int) {
	cmask := 1 << control
	tmask := 1 << target
	for i := range state {
		if i&cmask != 0 && i&tmask == 0 {
			j := i | tmask
			state[i], state[j] = state[j], state[i]
		}
	}
}
