// Package conn connects the CLI to the bottles management service over gRPC.
package conn

import (
	"io"

	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/bottlesdevs/bottles-cli/common/dialer"
	bottleslog "github.com/bottlesdevs/bottles-cli/common/log"
	"github.com/bottlesdevs/bottles-cli/protocol"
)

var logger = bottleslog.Target("bottles.conn")

// A Dialer can dial a connection to the management service.
// It's useful to have this as a separate interface so you can wait to
// connect until you need the connection. This allows clients to do client-side
// only operations (e.g., printing help) without erroring if the server is down.
type Dialer interface {
	Dial() (Conn, error)
	io.Closer
}

// Conn is an open connection to the management service.
type Conn interface {
	protocol.ManagementClient

	// Endpoint is what the connection was dialed from, e.g. http://[::1]:50052
	Endpoint() string

	Close() error
}

func NewCachingDialer(dialer Dialer) Dialer {
	return &cachingDialer{dialer, nil}
}

type cachingDialer struct {
	dialer Dialer
	conn   Conn
}

func (d *cachingDialer) Dial() (Conn, error) {
	if d.conn == nil {
		conn, err := d.dialer.Dial()
		if err != nil {
			return nil, err
		}
		d.conn = conn
	}
	return d.conn, nil
}

func (d *cachingDialer) Close() error {
	if d.conn == nil {
		return d.dialer.Close()
	}
	err := d.conn.Close()
	d.conn = nil
	if dErr := d.dialer.Close(); err == nil {
		err = dErr
	}
	return err
}

// NewGRPCDialer dials the endpoint r resolves to over plaintext gRPC.
// opts are appended to the defaults and may override them.
func NewGRPCDialer(r dialer.Resolver, opts ...grpc.DialOption) Dialer {
	return &grpcDialer{resolver: dialer.NewTargetResolver(r), opts: opts}
}

type grpcDialer struct {
	resolver *dialer.TargetResolver
	opts     []grpc.DialOption
}

// Dial does not wait for the connection to come up; an unreachable endpoint
// surfaces as an Unavailable status on the first call.
func (d *grpcDialer) Dial() (Conn, error) {
	endpoint := d.resolver.Endpoint()
	target, err := d.resolver.Resolve()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot reach bottles management service at %s", endpoint)
	}
	logger.Debugf("Dialing %s", target)

	opts := append([]grpc.DialOption{grpc.WithInsecure()}, d.opts...)
	cc, err := grpc.Dial(target, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot reach bottles management service at %s", endpoint)
	}
	return &conn{
		ManagementClient: protocol.NewManagementClient(cc),
		cc:               cc,
		endpoint:         endpoint,
	}, nil
}

func (d *grpcDialer) Close() error {
	return nil
}

type conn struct {
	protocol.ManagementClient
	cc       *grpc.ClientConn
	endpoint string
}

func (c *conn) Endpoint() string {
	return c.endpoint
}

func (c *conn) Close() error {
	logger.Debugf("Closing connection to %s", c.endpoint)
	return c.cc.Close()
}
