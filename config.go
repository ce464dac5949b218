package qsim

// Config holds the numeric tolerances the engine checks its invariants with.
type Config struct {
	// Tolerance bounds how far the total probability may drift from 1 before
	// a register release is refused.
	Tolerance float64
	// UnitaryTolerance is the elementwise bound on |M·M† - I|.
	UnitaryTolerance float64
	// DisplayThreshold hides basis states with a lower probability from String.
	DisplayThreshold float64
	DisplayPrecision int
}

func NewConfig() *Config {
	return &Config{
		Tolerance:        1e-6,
		UnitaryTolerance: 1e-8,
		DisplayThreshold: 1e-5,
		DisplayPrecision: 3,
	}
}
