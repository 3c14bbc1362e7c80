package cli

import (
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bottlesdevs/bottles-cli/client/command"
	bottleserrors "github.com/bottlesdevs/bottles-cli/common/errors"
)

// report writes err to stderr, unless Dispatch already did, and attaches the exit code.
func (c *CliClient) report(err error, endpoint string) error {
	switch e := err.(type) {
	case *UsageError:
		fmt.Fprintf(c.out.Stderr, "Error: %v\n", e.Err)
		fmt.Fprint(c.out.Stderr, e.Usage)
		return bottleserrors.NewError(err, bottleserrors.UsageExitCode)

	case *command.OperationError:
		return bottleserrors.NewError(err, bottleserrors.OperationFailureExitCode)

	case *command.RPCError:
		st := e.Status()
		if st.Code() == codes.Unavailable {
			fmt.Fprintf(c.out.Stderr, "Error: cannot reach bottles management service at %s: %s\n", endpoint, st.Message())
			return bottleserrors.NewError(err, bottleserrors.ConnectionFailureExitCode)
		}
		fmt.Fprintf(c.out.Stderr, "Error: %s failed: %s: %s%s\n", e.Method, st.Code(), st.Message(), describeDetails(st))
		return bottleserrors.NewError(err, bottleserrors.RPCFailureExitCode)

	default:
		// dial failures
		fmt.Fprintf(c.out.Stderr, "Error: %v\n", err)
		return bottleserrors.NewError(err, bottleserrors.ConnectionFailureExitCode)
	}
}

// describeDetails renders the google.rpc error details a server attached to a status.
func describeDetails(st *status.Status) string {
	var parts []string
	for _, d := range st.Details() {
		switch info := d.(type) {
		case *errdetails.BadRequest:
			for _, v := range info.GetFieldViolations() {
				parts = append(parts, fmt.Sprintf("%s: %s", v.GetField(), v.GetDescription()))
			}
		case *errdetails.PreconditionFailure:
			for _, v := range info.GetViolations() {
				parts = append(parts, fmt.Sprintf("%s %s: %s", v.GetType(), v.GetSubject(), v.GetDescription()))
			}
		case *errdetails.ResourceInfo:
			parts = append(parts, fmt.Sprintf("%s %s: %s", info.GetResourceType(), info.GetResourceName(), info.GetDescription()))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "; " + strings.Join(parts, "; ")
}
