package grpchelpers

import (
	"strings"
	"testing"

	"google.golang.org/grpc"
)

func TestStartLocal(t *testing.T) {
	registered := false
	s, err := StartLocal(func(*grpc.Server) { registered = true })
	if err != nil {
		t.Fatal(err)
	}
	if !registered {
		t.Fatalf("register was not called")
	}
	if !strings.HasPrefix(s.Addr(), "127.0.0.1:") {
		t.Fatalf("unexpected address %s", s.Addr())
	}
	if s.Endpoint() != "http://"+s.Addr() {
		t.Fatalf("unexpected endpoint %s", s.Endpoint())
	}
	if info := s.GetServiceInfo(); len(info) == 0 {
		t.Fatalf("expected the reflection service to be registered")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
