package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bottlesdevs/bottles-cli/client/command"
)

// Version is set at build time:
//	go build -ldflags "-X github.com/bottlesdevs/bottles-cli/client/cli.Version=1.2.3"
var Version = "0.1.0"

// UsageError is an invocation cobra could not turn into a command.
type UsageError struct {
	Err error
	// Usage of the (sub)command that failed to parse.
	Usage string
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Cause() error {
	return e.Err
}

// Parse turns args (without the program name) into a Command.
// It returns (nil, nil) when help or the version was printed to stdout instead.
func Parse(args []string, stdout io.Writer) (command.Command, error) {
	return newParser(stdout).parse(args)
}

type parser struct {
	root   *cobra.Command
	parsed command.Command
}

func newParser(stdout io.Writer) *parser {
	p := &parser{}
	p.root = &cobra.Command{
		Use:           "bottles-cli",
		Short:         "bottles-cli is a command-line client to the bottles management service",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("a command is required")
		},
	}
	p.root.SetOutput(stdout)

	p.root.AddCommand(p.createCmd())
	p.root.AddCommand(p.nameCmd("delete", "Delete a bottle", func(n string) command.Command { return command.Delete{Name: n} }))
	p.root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bottles",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p.parsed = command.List{}
			return nil
		},
	})
	p.root.AddCommand(p.nameCmd("start", "Start a bottle", func(n string) command.Command { return command.Start{Name: n} }))
	p.root.AddCommand(p.nameCmd("stop", "Stop a bottle", func(n string) command.Command { return command.Stop{Name: n} }))
	p.root.AddCommand(p.nameCmd("restart", "Restart a bottle", func(n string) command.Command { return command.Restart{Name: n} }))
	return p
}

func (p *parser) createCmd() *cobra.Command {
	var bottleType string
	c := &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a bottle",
		Example: "bottles-cli create mybottle --type Office",
		Args:    oneName,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bottleType == "" {
				return fmt.Errorf("--type must not be empty")
			}
			p.parsed = command.Create{Name: args[0], Type: bottleType}
			return nil
		},
	}
	c.Flags().StringVarP(&bottleType, "type", "t", command.DefaultBottleType, "Type of the bottle")
	return c
}

func (p *parser) nameCmd(use, short string, build func(string) command.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  oneName,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.parsed = build(args[0])
			return nil
		},
	}
}

func oneName(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if args[0] == "" {
		return fmt.Errorf("the bottle name must not be empty")
	}
	return nil
}

func (p *parser) parse(args []string) (command.Command, error) {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	p.root.SetArgs(args)
	cmd, err := p.root.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = p.root
		}
		return nil, &UsageError{Err: err, Usage: cmd.UsageString()}
	}
	return p.parsed, nil
}
