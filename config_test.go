package qbridge

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestHardwareConfigValidation(t *testing.T) {
	Convey("Given the default hardware config", t, func() {
		config := DefaultHardwareConfig()

		Convey("It should match the reference hardware profile", func() {
			So(config.Validate(), ShouldBeNil)
			So(config.Qubits, ShouldEqual, 4)
			So(config.CoherenceTimeUs, ShouldEqual, 100.0)
			So(config.GateFidelity, ShouldEqual, 0.99)
			So(config.ReadoutFidelity, ShouldEqual, 0.98)
		})
	})

	Convey("Given out-of-range parameters", t, func() {
		Convey("A non-positive qubit count should be rejected", func() {
			config := DefaultHardwareConfig()
			config.Qubits = 0
			So(config.Validate(), ShouldNotBeNil)
		})

		Convey("A non-positive coherence time should be rejected", func() {
			config := DefaultHardwareConfig()
			config.CoherenceTimeUs = -1
			So(config.Validate(), ShouldNotBeNil)
		})

		Convey("A gate fidelity above one should be rejected", func() {
			config := DefaultHardwareConfig()
			config.GateFidelity = 1.2
			So(config.Validate(), ShouldNotBeNil)
		})

		Convey("A zero readout fidelity should be rejected", func() {
			config := DefaultHardwareConfig()
			config.ReadoutFidelity = 0
			So(config.Validate(), ShouldNotBeNil)
		})
	})
}

func TestHardwareConfigFromViper(t *testing.T) {
	Convey("Given a viper instance carrying qpu keys", t, func() {
		v := viper.New()
		v.Set("qpu.qubits", 6)
		v.Set("qpu.coherence_time_us", 80.0)
		v.Set("qpu.gate_fidelity", 0.95)
		v.Set("qpu.readout_fidelity", 0.9)

		Convey("Loading should produce a validated config", func() {
			config, err := HardwareConfigFromViper(v)

			So(err, ShouldBeNil)
			So(config.Qubits, ShouldEqual, 6)
			So(config.CoherenceTimeUs, ShouldEqual, 80.0)
		})
	})

	Convey("Given a viper instance with invalid values", t, func() {
		v := viper.New()
		v.Set("qpu.qubits", -2)
		v.Set("qpu.coherence_time_us", 80.0)
		v.Set("qpu.gate_fidelity", 0.95)
		v.Set("qpu.readout_fidelity", 0.9)

		Convey("Loading should fail validation", func() {
			_, err := HardwareConfigFromViper(v)
			So(err, ShouldNotBeNil)
		})
	})
}
