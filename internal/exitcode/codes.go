// Package exitcode defines named exit codes for the pidext CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and analysis pipelines.
package exitcode

// Exit code constants.
const (
	Success           = 0 // Every argument resolved
	Error             = 1 // Invalid args, unreadable config, misconfiguration
	UnknownCode       = 2 // At least one PDG code has no identifier
	UnknownIdentifier = 3 // At least one identifier or name is out of range
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case UnknownCode:
		return "UnknownCode"
	case UnknownIdentifier:
		return "UnknownIdentifier"
	default:
		return "unknown"
	}
}
