package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qsim"
)

var (
	bellTrials int
	bellSeed   uint64
	bellDump   bool
)

var bellCmd = &cobra.Command{
	Use:   "bell",
	Short: "Entangle two qubits into a Bell state",
	Long: `Entangle two qubits into the Bell state (|00> + |11>)/√2.
Once entangled, measuring both qubits should always give the same result.`,
}

var bellShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the state of the system after every step",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showBell(newSystem(), cmd.OutOrStdout())
	},
}

var bellExperimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Count how often the two measurements agree",
	RunE: func(cmd *cobra.Command, args []string) error {
		qs := newSystem()
		out := cmd.OutOrStdout()

		agreed, err := runExperiment(qs, bellTrials)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Agreed: %d / %d\n", agreed, bellTrials)
		if bellDump {
			fmt.Fprint(out, spew.Sdump(qs.Metrics().ExportMetrics()))
		}
		return nil
	},
}

func init() {
	bellExperimentCmd.Flags().IntVarP(&bellTrials, "trials", "n", 50, "number of Bell pairs to prepare and measure")
	bellExperimentCmd.Flags().BoolVar(&bellDump, "dump", false, "dump the simulator metrics after the run")
	bellCmd.PersistentFlags().Uint64Var(&bellSeed, "seed", 0, "seed for measurement outcomes (0 picks a random seed)")

	bellCmd.AddCommand(bellShowCmd, bellExperimentCmd)
	rootCmd.AddCommand(bellCmd)
}

func newSystem() *qsim.QuantumSystem {
	if bellSeed == 0 {
		return qsim.NewQuantumSystem()
	}
	return qsim.NewQuantumSystem(qsim.WithSeed(bellSeed))
}

// prepareBell takes q0, q1 from |00⟩ to (|00⟩ + |11⟩)/√2.
func prepareBell(qs *qsim.QuantumSystem, q0, q1 *qsim.Qubit) error {
	if err := qsim.H.Apply(qs, q0); err != nil {
		return err
	}
	return qsim.CNot.Apply(qs, q0, q1)
}

/*
showBell walks through the Bell preparation, printing the state after each
step, then measures the first qubit and prints the collapsed state.
*/
func showBell(qs *qsim.QuantumSystem, out io.Writer) error {
	return qs.Scope(2, func(qubits []*qsim.Qubit) error {
		q0, q1 := qubits[0], qubits[1]
		fmt.Fprintf(out, "Initial state:\n%v\n", qs)

		if err := qsim.H.Apply(qs, q0); err != nil {
			return err
		}
		fmt.Fprintf(out, "Apply Hadamard gate to q0:\n%v\n", qs)

		if err := qsim.CNot.Apply(qs, q0, q1); err != nil {
			return err
		}
		fmt.Fprintf(out, "CNot(q0, q1):\n%v\n", qs)

		result, err := qs.Measure(q0)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Measure(q0) = %v:\n%v\n", result, qs)

		return qs.ResetAll(qubits)
	})
}

// runExperiment prepares and measures n fresh Bell pairs and counts agreements.
func runExperiment(qs *qsim.QuantumSystem, n int) (int, error) {
	agreed := 0

	for i := 0; i < n; i++ {
		err := qs.Scope(2, func(qubits []*qsim.Qubit) error {
			if err := prepareBell(qs, qubits[0], qubits[1]); err != nil {
				return err
			}

			a, err := qs.Measure(qubits[0])
			if err != nil {
				return err
			}
			b, err := qs.Measure(qubits[1])
			if err != nil {
				return err
			}

			if a == b {
				agreed++
			}
			return qs.ResetAll(qubits)
		})
		if err != nil {
			return agreed, fmt.Errorf("trial %d: %w", i, err)
		}
	}

	errnie.Info("runExperiment - agreed %d / %d", agreed, n)
	return agreed, nil
}
