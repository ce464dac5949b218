package main

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/qsim"
)

func TestRunExperiment(t *testing.T) {
	Convey("Given a seeded system", t, func() {
		qs := qsim.NewQuantumSystem(qsim.WithSeed(11))

		Convey("Every Bell pair should measure equal", func() {
			agreed, err := runExperiment(qs, 200)
			So(err, ShouldBeNil)
			So(agreed, ShouldEqual, 200)
			So(qs.NumQubits(), ShouldEqual, 0)
			So(qs.Metrics().Measurements, ShouldBeGreaterThanOrEqualTo, 400)
		})

		Convey("Zero trials should agree zero times", func() {
			agreed, err := runExperiment(qs, 0)
			So(err, ShouldBeNil)
			So(agreed, ShouldEqual, 0)
		})
	})
}

func TestShowBell(t *testing.T) {
	Convey("Given a buffer to print into", t, func() {
		var buf bytes.Buffer
		qs := qsim.NewQuantumSystem(qsim.WithSeed(5))

		So(showBell(qs, &buf), ShouldBeNil)
		out := buf.String()

		Convey("The trace should start in |00⟩", func() {
			So(out, ShouldContainSubstring, "Initial state:\n\t|00>\t|\t1.000+0.000j\n")
		})

		Convey("The trace should show the Bell state", func() {
			So(out, ShouldContainSubstring, "CNot(q0, q1):\n\t|00>\t|\t0.707+0.000j\n\t|11>\t|\t0.707+0.000j\n")
		})

		Convey("The system should be empty again", func() {
			So(qs.NumQubits(), ShouldEqual, 0)
		})
	})
}

func TestBellCommand(t *testing.T) {
	Convey("Given the bell experiment command", t, func() {
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"bell", "experiment", "-n", "20", "--seed", "5", "--dump"})

		Convey("It should report full agreement and dump the metrics", func() {
			So(rootCmd.Execute(), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Agreed: 20 / 20")
			So(buf.String(), ShouldContainSubstring, "measurements")
		})
	})
}
