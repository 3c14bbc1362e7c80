// Utilities for integration testing bottles-cli against an in-process management service
package integration

import (
	"bytes"
	"sync"

	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/bottlesdevs/bottles-cli/client/cli"
	"github.com/bottlesdevs/bottles-cli/client/command"
	"github.com/bottlesdevs/bottles-cli/client/conn"
	"github.com/bottlesdevs/bottles-cli/common/dialer"
	"github.com/bottlesdevs/bottles-cli/common/stats"
	"github.com/bottlesdevs/bottles-cli/protocol"
)

// Call is one request the fake service received.
type Call struct {
	Method   string
	Request  interface{}
	Metadata metadata.MD
}

// FakeService is a ManagementServer that answers from canned responses and records every call.
// A nil response means the empty message; a non-nil error is returned instead of any response.
type FakeService struct {
	mu     sync.Mutex
	canned responses
	err    error
	calls  []Call
}

func NewFakeService() *FakeService {
	return &FakeService{}
}

// Calls returns what the service received so far, in order.
func (s *FakeService) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Reset forgets recorded calls and canned responses.
func (s *FakeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned, s.err = responses{}, nil
	s.calls = nil
}

// SetResponses replaces the canned responses; safe to call while the service is serving.
func (s *FakeService) SetResponses(b *protocol.Bottle, l *protocol.BottleList, m *protocol.MutationResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned, s.err = responses{bottle: b, list: l, mutation: m}, err
}

type responses struct {
	bottle   *protocol.Bottle
	list     *protocol.BottleList
	mutation *protocol.MutationResponse
}

// record stores the call and snapshots the canned responses under the lock.
func (s *FakeService) record(ctx context.Context, method string, req interface{}) (responses, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: method, Request: req, Metadata: md})
	r := s.canned
	if r.bottle == nil {
		r.bottle = &protocol.Bottle{}
	}
	if r.list == nil {
		r.list = &protocol.BottleList{}
	}
	if r.mutation == nil {
		r.mutation = &protocol.MutationResponse{}
	}
	return r, s.err
}

func (s *FakeService) CreateBottle(ctx context.Context, req *protocol.CreateBottleRequest) (*protocol.Bottle, error) {
	r, err := s.record(ctx, "CreateBottle", req)
	if err != nil {
		return nil, err
	}
	return r.bottle, nil
}

func (s *FakeService) DeleteBottle(ctx context.Context, req *protocol.DeleteBottleRequest) (*protocol.MutationResponse, error) {
	r, err := s.record(ctx, "DeleteBottle", req)
	if err != nil {
		return nil, err
	}
	return r.mutation, nil
}

func (s *FakeService) ListBottles(ctx context.Context, req *protocol.ListBottlesRequest) (*protocol.BottleList, error) {
	r, err := s.record(ctx, "ListBottles", req)
	if err != nil {
		return nil, err
	}
	return r.list, nil
}

func (s *FakeService) StartBottle(ctx context.Context, req *protocol.BottleRequest) (*protocol.MutationResponse, error) {
	r, err := s.record(ctx, "StartBottle", req)
	if err != nil {
		return nil, err
	}
	return r.mutation, nil
}

func (s *FakeService) StopBottle(ctx context.Context, req *protocol.BottleRequest) (*protocol.MutationResponse, error) {
	r, err := s.record(ctx, "StopBottle", req)
	if err != nil {
		return nil, err
	}
	return r.mutation, nil
}

func (s *FakeService) RestartBottle(ctx context.Context, req *protocol.BottleRequest) (*protocol.MutationResponse, error) {
	r, err := s.record(ctx, "RestartBottle", req)
	if err != nil {
		return nil, err
	}
	return r.mutation, nil
}

// NewClient wires a CliClient to endpoint exactly the way the binary does, recording into recorder.
func NewClient(endpoint string, recorder *stats.Recorder) *cli.CliClient {
	di := conn.NewCachingDialer(conn.NewGRPCDialer(
		dialer.NewConstantResolver(endpoint),
		grpc.WithUnaryInterceptor(conn.NewClientInterceptor(recorder)),
	))
	return cli.NewCliClient(di)
}

// Run cl with args, return its output
func Run(cl *cli.CliClient, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := cl.SetOutput(&command.Output{Stdout: &stdout, Stderr: &stderr}).Exec(args)
	return stdout.String(), stderr.String(), err
}
