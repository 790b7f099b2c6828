// Package exitcode defines named exit codes for the supastack CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants for the generator's terminal conditions.
const (
	Success       = 0 // Project directory generated, all artifacts written
	Error         = 1 // Invalid args, bad project name, misconfiguration
	AlreadyExists = 2 // Target project directory already present
	PortExhausted = 3 // No available port within a service's search window
	WriteFailed   = 4 // Directory or file creation failed mid-generation
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case AlreadyExists:
		return "AlreadyExists"
	case PortExhausted:
		return "PortExhausted"
	case WriteFailed:
		return "WriteFailed"
	default:
		return "unknown"
	}
}
