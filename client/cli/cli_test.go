package cli_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bottlesdevs/bottles-cli/client/cli"
	"github.com/bottlesdevs/bottles-cli/client/command"
	"github.com/bottlesdevs/bottles-cli/client/conn"
	bottleserrors "github.com/bottlesdevs/bottles-cli/common/errors"
	"github.com/bottlesdevs/bottles-cli/protocol"
	"github.com/bottlesdevs/bottles-cli/protocol/mock_protocol"
)

type errorDialer struct {
	dials int
}

func (d *errorDialer) Dial() (conn.Conn, error) {
	d.dials++
	return nil, fmt.Errorf("errorDialer.Dial is error")
}

func (d *errorDialer) Close() error {
	return nil
}

type connDialer struct {
	conn  *fakeConn
	dials int
}

func (d *connDialer) Dial() (conn.Conn, error) {
	d.dials++
	return d.conn, nil
}

func (d *connDialer) Close() error {
	return nil
}

type fakeConn struct {
	*mock_protocol.MockManagementClient
	closed int
}

func (c *fakeConn) Endpoint() string {
	return protocol.DefaultEndpoint
}

func (c *fakeConn) Close() error {
	c.closed++
	return nil
}

type harness struct {
	mockCtrl *gomock.Controller
	client   *mock_protocol.MockManagementClient
	conn     *fakeConn
	dialer   *connDialer
	cl       *cli.CliClient
	stdout   bytes.Buffer
	stderr   bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	h := &harness{mockCtrl: gomock.NewController(t)}
	h.client = mock_protocol.NewMockManagementClient(h.mockCtrl)
	h.conn = &fakeConn{MockManagementClient: h.client}
	h.dialer = &connDialer{conn: h.conn}
	h.cl = cli.NewCliClient(conn.NewCachingDialer(h.dialer)).
		SetOutput(&command.Output{Stdout: &h.stdout, Stderr: &h.stderr})
	return h
}

func (h *harness) exec(args ...string) bottleserrors.ExitCode {
	return bottleserrors.GetExitCode(h.cl.Exec(args))
}

func assertExit(t *testing.T, got, want bottleserrors.ExitCode) {
	if got != want {
		t.Fatalf("exit code: got %d, want %d", got, want)
	}
}

func TestCreate(t *testing.T) {
	h := newHarness(t)
	defer h.mockCtrl.Finish()

	h.client.EXPECT().CreateBottle(gomock.Any(), &protocol.CreateBottleRequest{Name: "mybottle", Type: "Gaming"}).
		Return(&protocol.Bottle{Name: "mybottle", Type: "Gaming", Path: "/home/u/.bottles/mybottle"}, nil)

	assertExit(t, h.exec("create", "mybottle"), 0)
	if h.stdout.String() != "Created bottle: mybottle (Gaming) at /home/u/.bottles/mybottle\n" {
		t.Fatalf("unexpected stdout %q", h.stdout.String())
	}
	if h.stderr.Len() != 0 {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
	if h.conn.closed != 1 {
		t.Fatalf("connection should be closed once, closed %d times", h.conn.closed)
	}
}

func TestStopFailureExitsOne(t *testing.T) {
	h := newHarness(t)
	defer h.mockCtrl.Finish()

	h.client.EXPECT().StopBottle(gomock.Any(), &protocol.BottleRequest{Name: "ghost"}).
		Return(&protocol.MutationResponse{Success: false, ErrorMessage: "Bottle not found"}, nil)

	assertExit(t, h.exec("stop", "ghost"), bottleserrors.OperationFailureExitCode)
	if h.stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", h.stdout.String())
	}
	if h.stderr.String() != "Failed to stop bottle: Bottle not found\n" {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
	if h.conn.closed != 1 {
		t.Fatalf("connection should be closed after a failure, closed %d times", h.conn.closed)
	}
}

func TestUnavailableExitsConnectionFailure(t *testing.T) {
	h := newHarness(t)
	defer h.mockCtrl.Finish()

	h.client.EXPECT().ListBottles(gomock.Any(), gomock.Any()).
		Return(nil, status.Error(codes.Unavailable, "connection refused"))

	assertExit(t, h.exec("list"), bottleserrors.ConnectionFailureExitCode)
	if h.stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", h.stdout.String())
	}
	want := "Error: cannot reach bottles management service at http://[::1]:50052: connection refused\n"
	if h.stderr.String() != want {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
}

func TestStatusErrorExitsRPCFailure(t *testing.T) {
	h := newHarness(t)
	defer h.mockCtrl.Finish()

	st, err := status.New(codes.InvalidArgument, "bad bottle").WithDetails(
		&errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "type", Description: "unknown type"},
		}},
		&errdetails.ResourceInfo{ResourceType: "bottle", ResourceName: "x", Description: "exists"},
	)
	if err != nil {
		t.Fatal(err)
	}
	h.client.EXPECT().CreateBottle(gomock.Any(), gomock.Any()).Return(nil, st.Err())

	assertExit(t, h.exec("create", "x", "-t", "Weird"), bottleserrors.RPCFailureExitCode)
	want := "Error: CreateBottle failed: InvalidArgument: bad bottle; type: unknown type; bottle x: exists\n"
	if h.stderr.String() != want {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
	if h.stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", h.stdout.String())
	}
}

func TestPreconditionFailureDetails(t *testing.T) {
	h := newHarness(t)
	defer h.mockCtrl.Finish()

	st, err := status.New(codes.FailedPrecondition, "cannot start").WithDetails(
		&errdetails.PreconditionFailure{Violations: []*errdetails.PreconditionFailure_Violation{
			{Type: "STATE", Subject: "bottle/x", Description: "already running"},
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	h.client.EXPECT().StartBottle(gomock.Any(), &protocol.BottleRequest{Name: "x"}).Return(nil, st.Err())

	assertExit(t, h.exec("start", "x"), bottleserrors.RPCFailureExitCode)
	want := "Error: StartBottle failed: FailedPrecondition: cannot start; STATE bottle/x: already running\n"
	if h.stderr.String() != want {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
}

func TestDialErrorExitsConnectionFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	d := &errorDialer{}
	cl := cli.NewCliClient(conn.NewCachingDialer(d)).
		SetOutput(&command.Output{Stdout: &stdout, Stderr: &stderr})

	assertExit(t, bottleserrors.GetExitCode(cl.Exec([]string{"restart", "x"})), bottleserrors.ConnectionFailureExitCode)
	if d.dials != 1 {
		t.Fatalf("expected one dial, got %d", d.dials)
	}
	if !strings.HasPrefix(stderr.String(), "Error: errorDialer.Dial is error") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

func TestHelpAndVersionNeverDial(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"--version"}, {"help", "create"}, {"delete", "--help"}} {
		h := newHarness(t)
		assertExit(t, h.exec(args...), 0)
		if h.dialer.dials != 0 {
			t.Fatalf("%v: dialed %d times", args, h.dialer.dials)
		}
		if h.stdout.Len() == 0 {
			t.Fatalf("%v: expected output on stdout", args)
		}
		if h.stderr.Len() != 0 {
			t.Fatalf("%v: unexpected stderr %q", args, h.stderr.String())
		}
		h.mockCtrl.Finish()
	}
}

func TestUsageErrorsNeverDial(t *testing.T) {
	for _, args := range [][]string{{}, {"create"}, {"bogus"}, {"list", "x"}, {"start", "a", "b"}, {"create", "a", "--nope"}} {
		h := newHarness(t)
		assertExit(t, h.exec(args...), bottleserrors.UsageExitCode)
		if h.dialer.dials != 0 {
			t.Fatalf("%v: dialed %d times", args, h.dialer.dials)
		}
		if h.stdout.Len() != 0 {
			t.Fatalf("%v: unexpected stdout %q", args, h.stdout.String())
		}
		if !strings.HasPrefix(h.stderr.String(), "Error: ") || !strings.Contains(h.stderr.String(), "Usage:") {
			t.Fatalf("%v: expected a diagnostic and usage on stderr, got %q", args, h.stderr.String())
		}
		h.mockCtrl.Finish()
	}
}
