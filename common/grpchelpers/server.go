// Package grpchelpers hosts gRPC servers for tests and tooling that stand in for the management service.
package grpchelpers

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	bottleslog "github.com/bottlesdevs/bottles-cli/common/log"
)

var logger = bottleslog.Target("bottles.grpc")

// NewServer returns a new grpc server just like grpc.NewServer(), but
// which automatically implements the grpc server reflection protocol.
// See https://github.com/grpc/grpc/blob/master/doc/server-reflection.md
func NewServer(opt ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opt...)
	reflection.Register(s)
	return s
}

// LocalServer is a gRPC server serving on a loopback port picked by the kernel.
type LocalServer struct {
	*grpc.Server
	lis  net.Listener
	done chan error
}

// StartLocal listens on 127.0.0.1:0, lets register attach services, and serves in the background.
func StartLocal(register func(*grpc.Server), opt ...grpc.ServerOption) (*LocalServer, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrap(err, "listening on loopback")
	}
	s := &LocalServer{Server: NewServer(opt...), lis: lis, done: make(chan error, 1)}
	register(s.Server)
	go func() {
		s.done <- s.Serve(lis)
	}()
	logger.Debugf("Serving on %s", lis.Addr())
	return s, nil
}

// Addr is the host:port the server listens on.
func (s *LocalServer) Addr() string {
	return s.lis.Addr().String()
}

// Endpoint is Addr in the URL form the CLI dials, e.g. http://127.0.0.1:41234
func (s *LocalServer) Endpoint() string {
	return fmt.Sprintf("http://%s", s.Addr())
}

// Stop stops the server and waits for Serve to return.
func (s *LocalServer) Stop() error {
	s.Server.Stop()
	err := <-s.done
	if err == grpc.ErrServerStopped {
		return nil
	}
	return err
}
