package command

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"golang.org/x/net/context"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bottlesdevs/bottles-cli/protocol"
	"github.com/bottlesdevs/bottles-cli/protocol/mock_protocol"
)

func newOutput() (*Output, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Output{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestDispatchCreate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	req := &protocol.CreateBottleRequest{Name: "mybottle", Type: "Gaming", Runner: ""}
	client.EXPECT().CreateBottle(gomock.Any(), req).Return(
		&protocol.Bottle{Name: "mybottle", Type: "Gaming", Path: "/var/bottles/mybottle"}, nil)

	out, stdout, stderr := newOutput()
	if err := Dispatch(context.Background(), client, Create{Name: "mybottle", Type: DefaultBottleType}, out); err != nil {
		t.Fatalf("Error on Create: %s", err)
	}
	if stdout.String() != "Created bottle: mybottle (Gaming) at /var/bottles/mybottle\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestDispatchCreateWithType(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	req := &protocol.CreateBottleRequest{Name: "mybottle", Type: "Office", Runner: ""}
	client.EXPECT().CreateBottle(gomock.Any(), req).Return(
		&protocol.Bottle{Name: "mybottle", Type: "Office", Path: "/p"}, nil)

	out, stdout, _ := newOutput()
	if err := Dispatch(context.Background(), client, Create{Name: "mybottle", Type: "Office"}, out); err != nil {
		t.Fatalf("Error on Create: %s", err)
	}
	if stdout.String() != "Created bottle: mybottle (Office) at /p\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestDispatchList(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	client.EXPECT().ListBottles(gomock.Any(), &protocol.ListBottlesRequest{}).Return(
		&protocol.BottleList{Bottles: []*protocol.Bottle{
			{Name: "a", Type: "Gaming", Active: true},
			{Name: "b", Type: "Office", Active: false},
		}}, nil)

	out, stdout, _ := newOutput()
	if err := Dispatch(context.Background(), client, List{}, out); err != nil {
		t.Fatalf("Error on List: %s", err)
	}
	expected := "Bottles:\n- a (Gaming) [Running]\n- b (Office) [Stopped]\n"
	if stdout.String() != expected {
		t.Fatalf("unexpected stdout:\n%s\nexpected:\n%s", stdout.String(), expected)
	}
}

func TestDispatchListEmpty(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	client.EXPECT().ListBottles(gomock.Any(), gomock.Any()).Return(&protocol.BottleList{}, nil)

	out, stdout, _ := newOutput()
	if err := Dispatch(context.Background(), client, List{}, out); err != nil {
		t.Fatalf("Error on List: %s", err)
	}
	if stdout.String() != "Bottles:\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestDispatchDeleteFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	client.EXPECT().DeleteBottle(gomock.Any(), &protocol.DeleteBottleRequest{Name: "gone"}).Return(
		&protocol.MutationResponse{Success: false, ErrorMessage: "not found"}, nil)

	out, stdout, stderr := newOutput()
	err := Dispatch(context.Background(), client, Delete{Name: "gone"}, out)
	if !IsReported(err) {
		t.Fatalf("expected an OperationError, got %v", err)
	}
	if stderr.String() != "Failed to delete bottle: not found\n" {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestDispatchDeleteSuccess(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	client.EXPECT().DeleteBottle(gomock.Any(), &protocol.DeleteBottleRequest{Name: "old"}).Return(
		&protocol.MutationResponse{Success: true}, nil)

	out, stdout, _ := newOutput()
	if err := Dispatch(context.Background(), client, Delete{Name: "old"}, out); err != nil {
		t.Fatalf("Error on Delete: %s", err)
	}
	if stdout.String() != "Deleted bottle successfully\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestDispatchLifecycle(t *testing.T) {
	tests := []struct {
		cmd     Command
		expect  func(c *mock_protocol.MockManagementClient, resp *protocol.MutationResponse)
		success string
		failure string
	}{
		{
			cmd: Start{Name: "x"},
			expect: func(c *mock_protocol.MockManagementClient, resp *protocol.MutationResponse) {
				c.EXPECT().StartBottle(gomock.Any(), &protocol.BottleRequest{Name: "x"}).Return(resp, nil)
			},
			success: "Bottle started successfully\n",
			failure: "Failed to start bottle: already running\n",
		},
		{
			cmd: Stop{Name: "x"},
			expect: func(c *mock_protocol.MockManagementClient, resp *protocol.MutationResponse) {
				c.EXPECT().StopBottle(gomock.Any(), &protocol.BottleRequest{Name: "x"}).Return(resp, nil)
			},
			success: "Bottle stopped successfully\n",
			failure: "Failed to stop bottle: already running\n",
		},
		{
			cmd: Restart{Name: "x"},
			expect: func(c *mock_protocol.MockManagementClient, resp *protocol.MutationResponse) {
				c.EXPECT().RestartBottle(gomock.Any(), &protocol.BottleRequest{Name: "x"}).Return(resp, nil)
			},
			success: "Bottle restarted successfully\n",
			failure: "Failed to restart bottle: already running\n",
		},
	}

	for _, test := range tests {
		mockCtrl := gomock.NewController(t)
		client := mock_protocol.NewMockManagementClient(mockCtrl)
		test.expect(client, &protocol.MutationResponse{Success: true})
		out, stdout, stderr := newOutput()
		if err := Dispatch(context.Background(), client, test.cmd, out); err != nil {
			t.Fatalf("%s: unexpected error %v", test.cmd, err)
		}
		if stdout.String() != test.success || stderr.Len() != 0 {
			t.Fatalf("%s: unexpected output %q / %q", test.cmd, stdout.String(), stderr.String())
		}
		mockCtrl.Finish()

		mockCtrl = gomock.NewController(t)
		client = mock_protocol.NewMockManagementClient(mockCtrl)
		test.expect(client, &protocol.MutationResponse{Success: false, ErrorMessage: "already running"})
		out, stdout, stderr = newOutput()
		err := Dispatch(context.Background(), client, test.cmd, out)
		if !IsReported(err) {
			t.Fatalf("%s: expected OperationError, got %v", test.cmd, err)
		}
		if stderr.String() != test.failure || stdout.Len() != 0 {
			t.Fatalf("%s: unexpected output %q / %q", test.cmd, stdout.String(), stderr.String())
		}
		mockCtrl.Finish()
	}
}

func TestDispatchRPCError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	rpcErr := status.Error(codes.Unavailable, "connection refused")
	client.EXPECT().StartBottle(gomock.Any(), gomock.Any()).Return(nil, rpcErr)

	out, stdout, stderr := newOutput()
	err := Dispatch(context.Background(), client, Start{Name: "x"}, out)
	e, ok := err.(*RPCError)
	if !ok {
		t.Fatalf("expected *RPCError, got %T: %v", err, err)
	}
	if e.Method != "StartBottle" || e.Status().Code() != codes.Unavailable {
		t.Fatalf("unexpected error contents: %+v", e)
	}
	if IsReported(err) {
		t.Fatal("RPC errors are not written by Dispatch")
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("expected no output, got %q / %q", stdout.String(), stderr.String())
	}
}

func TestDispatchCreateRPCError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	client := mock_protocol.NewMockManagementClient(mockCtrl)

	client.EXPECT().CreateBottle(gomock.Any(), gomock.Any()).Return(nil, status.Error(codes.AlreadyExists, "exists"))

	out, stdout, _ := newOutput()
	err := Dispatch(context.Background(), client, Create{Name: "dup", Type: DefaultBottleType}, out)
	if e, ok := err.(*RPCError); !ok || e.Status().Code() != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists RPCError, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no stdout, got %q", stdout.String())
	}
}
