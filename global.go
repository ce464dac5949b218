package qsim

import (
	"sync"

	"github.com/theapemachine/errnie"
)

var (
	system     *QuantumSystem
	systemOnce sync.Once
)

/*
GetSystem returns the process-wide QuantumSystem, creating it on first use.
It is never torn down. Tests and libraries should prefer their own
NewQuantumSystem.
*/
func GetSystem() *QuantumSystem {
	systemOnce.Do(func() {
		errnie.Info("GetSystem - creating process-wide quantum system")
		system = NewQuantumSystem()
	})
	return system
}
