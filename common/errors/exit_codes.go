package errors

type ExitCode int

const (
	// The server answered but reported success=false.
	OperationFailureExitCode ExitCode = 1

	// Bad invocation: unknown command or flag, wrong number of arguments.
	UsageExitCode ExitCode = 2

	// The management service could not be reached.
	ConnectionFailureExitCode ExitCode = 69

	// The management service returned a non-OK status.
	RPCFailureExitCode ExitCode = 70
)
