package buildsys

import "runtime"

// Host describes the platform facts that influence the generated flags.
type Host struct {
	Windows bool
	CPUs    int
}

// DetectHost returns the Host for the running process
func DetectHost() Host {
	return Host{
		Windows: runtime.GOOS == "windows",
		CPUs:    runtime.NumCPU(),
	}
}
