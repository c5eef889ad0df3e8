package qbridge

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecognizerProcess(t *testing.T) {
	Convey("Given a recognizer backed by a ready QPU", t, func() {
		engine := &stubEngine{table: uniformTable(ResultLabel, Shots, 1, 0, 1, 0)}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		recognizer := NewRecognizer(qpu)

		Convey("Processing a feature vector should yield a decision", func() {
			decision, err := recognizer.Process([]float64{0.5, 0.3, 0.8, 0.1})

			So(err, ShouldBeNil)
			So(decision.PatternIdentified, ShouldBeTrue)
			So(decision.Confidence, ShouldAlmostEqual, 1.0)
			So(qpu.CheckStatus(), ShouldEqual, StatusReady)
		})
	})

	Convey("Given a QPU that starts outside the ready state", t, func() {
		engine := &stubEngine{table: uniformTable(ResultLabel, Shots, 0, 0, 0, 0)}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		qpu.status = StatusError
		recognizer := NewRecognizer(qpu)

		Convey("Processing should calibrate first and then succeed", func() {
			decision, err := recognizer.Process([]float64{0.1})

			So(err, ShouldBeNil)
			So(decision.PatternIdentified, ShouldBeFalse)
			So(engine.cals, ShouldEqual, 1)
			So(qpu.CheckStatus(), ShouldEqual, StatusReady)
		})
	})

	Convey("Given a QPU whose calibration cannot restore readiness", t, func() {
		engine := &stubEngine{calErr: errors.New("resonator drift")}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		qpu.status = StatusError
		recognizer := NewRecognizer(qpu)

		Convey("Processing should surface an UnavailableError", func() {
			_, err := recognizer.Process([]float64{0.1})

			var unavailable *UnavailableError
			So(errors.As(err, &unavailable), ShouldBeTrue)
			So(engine.runs, ShouldEqual, 0)
		})
	})

	Convey("Given an engine that faults during execution", t, func() {
		engine := &stubEngine{runErr: errors.New("readout collapsed")}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		recognizer := NewRecognizer(qpu)

		Convey("The fault should stay reachable through the wrapped error", func() {
			_, err := recognizer.Process([]float64{0.1})

			So(err, ShouldNotBeNil)
			var fault *ExecutionFault
			So(errors.As(err, &fault), ShouldBeTrue)
			So(qpu.CheckStatus(), ShouldEqual, StatusError)
		})
	})

	Convey("Given an engine that returns a table under the wrong label", t, func() {
		engine := &stubEngine{table: uniformTable("wrong", Shots, 1)}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		recognizer := NewRecognizer(qpu)

		Convey("Processing should fail with a DecodeError", func() {
			_, err := recognizer.Process([]float64{0.1})

			var decodeErr *DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
		})
	})
}

func TestMotionPlannerPlan(t *testing.T) {
	Convey("Given a planner with a mock robot", t, func() {
		engine := &stubEngine{table: uniformTable(ResultLabel, Shots, 1, 1, 0, 0)}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		robot := NewMockRobot(nil)
		planner := NewMotionPlanner(qpu, WithActuator(robot))

		Convey("Planning should pick the majority outcome and actuate it", func() {
			movement, hist, err := planner.Plan([]float64{0.5, 0.3, 0.8, 0.1})

			So(err, ShouldBeNil)
			So(movement, ShouldEqual, Movement(3))
			So(hist[movement], ShouldEqual, Shots)
			So(robot.Moves(), ShouldResemble, []Movement{3})
		})
	})

	Convey("Given a planner with no actuator supplied", t, func() {
		engine := &stubEngine{table: uniformTable(ResultLabel, Shots, 0)}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		planner := NewMotionPlanner(qpu)

		Convey("It should fall back to a mock robot and still plan", func() {
			movement, _, err := planner.Plan([]float64{0.1})

			So(err, ShouldBeNil)
			So(movement, ShouldEqual, Movement(0))
		})
	})

	Convey("Given a faulting engine behind the planner", t, func() {
		engine := &stubEngine{runErr: errors.New("gate dropout")}
		qpu, _ := NewQPU(DefaultHardwareConfig(), engine)
		robot := NewMockRobot(nil)
		planner := NewMotionPlanner(qpu, WithActuator(robot))

		Convey("The actuator should never be reached", func() {
			_, _, err := planner.Plan([]float64{0.1})

			So(err, ShouldNotBeNil)
			So(robot.Moves(), ShouldBeEmpty)
		})
	})
}

func TestPipelineAgainstSimulator(t *testing.T) {
	Convey("Given the full pipeline on the simulated engine", t, func() {
		qpu, err := NewQPU(DefaultHardwareConfig(), NewSimEngine(99))
		So(err, ShouldBeNil)
		recognizer := NewRecognizer(qpu)

		Convey("The demonstration vector should process end to end", func() {
			decision, err := recognizer.Process([]float64{0.5, 0.3, 0.8, 0.1})

			So(err, ShouldBeNil)
			So(decision.Confidence, ShouldBeBetweenOrEqual, 0, 1)
			So(qpu.CheckStatus(), ShouldEqual, StatusReady)
		})

		Convey("The optimization variant should agree with its histogram", func() {
			planner := NewMotionPlanner(qpu)
			movement, hist, err := planner.Plan([]float64{0.5, 0.3, 0.8, 0.1})

			So(err, ShouldBeNil)
			total := 0
			for outcome, count := range hist {
				total += count
				So(hist[movement], ShouldBeGreaterThanOrEqualTo, count)
				So(outcome, ShouldBeLessThan, Movement(16))
			}
			So(total, ShouldEqual, Shots)
		})
	})
}
