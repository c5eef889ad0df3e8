package qbridge

import (
	"fmt"

	"github.com/spf13/viper"
)

// HardwareConfig carries the static quality parameters of the QPU.
// Coherence time and fidelities are configuration, not something the
// middleware simulates; they describe the hardware the circuits run on.
// The bundle is a value type and never mutated after construction.
type HardwareConfig struct {
	Qubits          int
	CoherenceTimeUs float64
	GateFidelity    float64
	ReadoutFidelity float64
}

func DefaultHardwareConfig() HardwareConfig {
	return HardwareConfig{
		Qubits:          4,
		CoherenceTimeUs: 100.0,
		GateFidelity:    0.99,
		ReadoutFidelity: 0.98,
	}
}

// Validate checks the parameter ranges: a positive qubit count and
// coherence time, fidelities in (0, 1].
func (c HardwareConfig) Validate() error {
	if c.Qubits <= 0 {
		return fmt.Errorf("qubit count must be positive, got %d", c.Qubits)
	}
	if c.CoherenceTimeUs <= 0 {
		return fmt.Errorf("coherence time must be positive, got %f", c.CoherenceTimeUs)
	}
	if c.GateFidelity <= 0 || c.GateFidelity > 1 {
		return fmt.Errorf("gate fidelity must be in (0,1], got %f", c.GateFidelity)
	}
	if c.ReadoutFidelity <= 0 || c.ReadoutFidelity > 1 {
		return fmt.Errorf("readout fidelity must be in (0,1], got %f", c.ReadoutFidelity)
	}
	return nil
}

// HardwareConfigFromViper reads the qpu.* keys from the given viper
// instance and validates the result. Callers are expected to seed the
// defaults first, see cmd/qbridge.
func HardwareConfigFromViper(v *viper.Viper) (HardwareConfig, error) {
	cfg := HardwareConfig{
		Qubits:          v.GetInt("qpu.qubits"),
		CoherenceTimeUs: v.GetFloat64("qpu.coherence_time_us"),
		GateFidelity:    v.GetFloat64("qpu.gate_fidelity"),
		ReadoutFidelity: v.GetFloat64("qpu.readout_fidelity"),
	}
	if err := cfg.Validate(); err != nil {
		return HardwareConfig{}, err
	}
	return cfg, nil
}
