package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	ACC_Profile = "v1.0.0"
	Pep_Gen     = "v1.0.0"
	Check       = "v1.0.0"
	Benchmark   = "v1.0.0"
)
