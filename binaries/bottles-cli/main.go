package main

import (
	"fmt"
	"os"

	"google.golang.org/grpc"

	"github.com/bottlesdevs/bottles-cli/client/cli"
	"github.com/bottlesdevs/bottles-cli/client/conn"
	"github.com/bottlesdevs/bottles-cli/common/dialer"
	"github.com/bottlesdevs/bottles-cli/common/errors"
	bottleslog "github.com/bottlesdevs/bottles-cli/common/log"
	"github.com/bottlesdevs/bottles-cli/common/stats"
	"github.com/bottlesdevs/bottles-cli/protocol"
)

// Command-line client to the bottles management service.
// Supported commands: create, delete, list, start, stop, restart. See bottles-cli --help.
func main() {
	if err := bottleslog.Init(os.Getenv(bottleslog.EnvVar), os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", bottleslog.EnvVar, err)
	}

	recorder := stats.NewRecorder()
	di := conn.NewCachingDialer(conn.NewGRPCDialer(
		dialer.NewConstantResolver(protocol.DefaultEndpoint),
		grpc.WithUnaryInterceptor(conn.NewClientInterceptor(recorder)),
	))

	err := cli.NewCliClient(di).Exec(os.Args[1:])
	recorder.Log(bottleslog.Target("bottles.stats"))
	os.Exit(int(errors.GetExitCode(err)))
}
