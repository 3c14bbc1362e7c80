package command

import (
	"fmt"

	"google.golang.org/grpc/status"
)

// RPCError is a call that produced no response: the service was unreachable
// or returned a non-OK status. Nothing has been written for it.
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Method, e.Err)
}

func (e *RPCError) Cause() error {
	return e.Err
}

// Status returns the gRPC status of the failed call. Errors that did not come
// from gRPC are reported with code Unknown.
func (e *RPCError) Status() *status.Status {
	st, _ := status.FromError(e.Err)
	return st
}

// OperationError is a response with success=false. Its message has already
// been written to stderr by Dispatch.
type OperationError struct {
	Verb    string
	Message string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("Failed to %s bottle: %s", e.Verb, e.Message)
}

// IsReported reports whether err was already written out by Dispatch.
func IsReported(err error) bool {
	_, ok := err.(*OperationError)
	return ok
}
