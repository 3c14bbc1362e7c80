package cli

import (
	"golang.org/x/net/context"

	"github.com/bottlesdevs/bottles-cli/client/command"
	"github.com/bottlesdevs/bottles-cli/client/conn"
	bottleslog "github.com/bottlesdevs/bottles-cli/common/log"
)

var logger = bottleslog.Target("bottles.cli")

type CliClient struct {
	dialer conn.Dialer
	out    *command.Output
}

func NewCliClient(dialer conn.Dialer) *CliClient {
	return &CliClient{dialer: dialer, out: command.StdOutput()}
}

// SetOutput redirects what Exec writes; returns c for chaining.
func (c *CliClient) SetOutput(out *command.Output) *CliClient {
	c.out = out
	return c
}

// Exec runs one invocation: parse, dial, dispatch, close.
// The returned error carries an exit code (see common/errors) and has already been reported on stderr.
func (c *CliClient) Exec(args []string) error {
	cmd, err := Parse(args, c.out.Stdout)
	if err != nil {
		logger.WithError(err).Debug("Could not parse arguments")
		return c.report(err, "")
	}
	if cmd == nil {
		// help or version
		return nil
	}

	defer c.close()
	cn, err := c.dialer.Dial()
	if err != nil {
		return c.report(err, "")
	}
	if err := command.Dispatch(context.Background(), cn, cmd, c.out); err != nil {
		return c.report(err, cn.Endpoint())
	}
	return nil
}

func (c *CliClient) close() {
	if err := c.dialer.Close(); err != nil {
		logger.WithError(err).Warn("Error closing connection")
	}
}
