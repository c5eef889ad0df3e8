package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/theapemachine/qbridge"
)

// Demonstration scenario: a fixed robot-vision feature vector pushed
// through both pipeline variants against the simulated engine.
func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "qbridge",
	})

	config, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid hardware config", "err", err)
	}

	qpu, err := qbridge.NewQPU(config, qbridge.NewSimEngine(0))
	if err != nil {
		logger.Fatal("could not initialize qpu", "err", err)
	}

	visionData := []float64{0.5, 0.3, 0.8, 0.1}

	recognizer := qbridge.NewRecognizer(qpu, qbridge.WithRecognizerLogger(logger))
	decision, err := recognizer.Process(visionData)
	if err != nil {
		logger.Fatal("pattern recognition failed", "err", err)
	}
	logger.Info("pattern recognition finished",
		"identified", decision.PatternIdentified,
		"confidence", fmt.Sprintf("%.2f", decision.Confidence),
	)

	robot := qbridge.NewMockRobot(logger)
	planner := qbridge.NewMotionPlanner(qpu,
		qbridge.WithActuator(robot),
		qbridge.WithPlannerLogger(logger),
	)
	movement, hist, err := planner.Plan(visionData)
	if err != nil {
		logger.Fatal("movement optimization failed", "err", err)
	}
	logger.Info("movement optimization finished",
		"movement", movement,
		"distribution", hist,
	)

	stats := qpu.Metrics()
	logger.Info("qpu session stats",
		"executions", stats.Executions,
		"shots", stats.ShotsTaken,
		"avg_latency", stats.AverageLatency,
	)
}

// loadConfig reads an optional qbridge.yaml next to the binary.
// Running without a config file falls back to the default hardware
// profile.
func loadConfig() (qbridge.HardwareConfig, error) {
	v := viper.New()
	v.SetConfigName("qbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	defaults := qbridge.DefaultHardwareConfig()
	v.SetDefault("qpu.qubits", defaults.Qubits)
	v.SetDefault("qpu.coherence_time_us", defaults.CoherenceTimeUs)
	v.SetDefault("qpu.gate_fidelity", defaults.GateFidelity)
	v.SetDefault("qpu.readout_fidelity", defaults.ReadoutFidelity)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return qbridge.HardwareConfig{}, err
		}
	}

	return qbridge.HardwareConfigFromViper(v)
}
