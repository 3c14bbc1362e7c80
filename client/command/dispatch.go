package command

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/net/context"

	bottleslog "github.com/bottlesdevs/bottles-cli/common/log"
	"github.com/bottlesdevs/bottles-cli/protocol"
)

var logger = bottleslog.Target("bottles.command")

// Output is where Dispatch writes: results to Stdout, failures to Stderr.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
}

func StdOutput() *Output {
	return &Output{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Dispatch sends cmd as exactly one request and renders the response.
//
// An *RPCError means no response arrived and nothing was written.
// An *OperationError means the service answered success=false; the failure line is already on Stderr.
func Dispatch(ctx context.Context, client protocol.ManagementClient, cmd Command, out *Output) error {
	logger.Debugf("Dispatching %s as %s", cmd, cmd.Method())

	switch c := cmd.(type) {
	case Create:
		req := &protocol.CreateBottleRequest{Name: c.Name, Type: c.Type, Runner: ""}
		bottle, err := client.CreateBottle(ctx, req)
		if err != nil {
			return &RPCError{Method: c.Method(), Err: err}
		}
		fmt.Fprintf(out.Stdout, "Created bottle: %s (%s) at %s\n", bottle.GetName(), bottle.GetType(), bottle.GetPath())
		return nil

	case Delete:
		resp, err := client.DeleteBottle(ctx, &protocol.DeleteBottleRequest{Name: c.Name})
		return report(out, c.Method(), "delete", "Deleted bottle successfully", resp, err)

	case List:
		list, err := client.ListBottles(ctx, &protocol.ListBottlesRequest{})
		if err != nil {
			return &RPCError{Method: c.Method(), Err: err}
		}
		fmt.Fprintln(out.Stdout, "Bottles:")
		for _, b := range list.GetBottles() {
			fmt.Fprintf(out.Stdout, "- %s (%s) [%s]\n", b.GetName(), b.GetType(), state(b))
		}
		return nil

	case Start:
		resp, err := client.StartBottle(ctx, &protocol.BottleRequest{Name: c.Name})
		return report(out, c.Method(), "start", "Bottle started successfully", resp, err)

	case Stop:
		resp, err := client.StopBottle(ctx, &protocol.BottleRequest{Name: c.Name})
		return report(out, c.Method(), "stop", "Bottle stopped successfully", resp, err)

	case Restart:
		resp, err := client.RestartBottle(ctx, &protocol.BottleRequest{Name: c.Name})
		return report(out, c.Method(), "restart", "Bottle restarted successfully", resp, err)

	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func state(b *protocol.Bottle) string {
	if b.GetActive() {
		return "Running"
	}
	return "Stopped"
}

// report renders a MutationResponse, shared by every command without a payload in its answer.
func report(out *Output, method, verb, success string, resp *protocol.MutationResponse, err error) error {
	if err != nil {
		return &RPCError{Method: method, Err: err}
	}
	if resp.GetSuccess() {
		fmt.Fprintln(out.Stdout, success)
		return nil
	}
	opErr := &OperationError{Verb: verb, Message: resp.GetErrorMessage()}
	logger.WithField("method", method).Debug(opErr.Error())
	fmt.Fprintln(out.Stderr, opErr.Error())
	return opErr
}
