package conn

import (
	"path"
	"time"

	"github.com/davecgh/go-spew/spew"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/bottlesdevs/bottles-cli/common/stats"
)

// RequestIDHeader carries a fresh v4 UUID on every call so server logs can be matched to ours.
const RequestIDHeader = "x-request-id"

// NewClientInterceptor tags, logs and times every unary call.
func NewClientInterceptor(recorder *stats.Recorder) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		id, err := uuid.NewV4()
		if err != nil {
			return errors.Wrap(err, "generating request id")
		}
		ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, id.String())

		name := path.Base(method)
		entry := logger.WithFields(logrus.Fields{"method": name, "request_id": id.String()})
		entry.Debug("Sending request")
		dump(entry, req)

		rpcStats := recorder.Scope(stats.RPCScope, name)
		rpcStats.Counter(stats.RPCRequestCounter).Inc(1)
		start := time.Now()
		err = invoker(ctx, method, req, reply, cc, opts...)
		rpcStats.Time(start, stats.RPCLatency_ms)
		if err != nil {
			rpcStats.Counter(stats.RPCFailureCounter).Inc(1)
			entry.WithError(err).Debug("Request failed")
			return err
		}
		entry.WithField("elapsed", time.Since(start)).Debug("Received response")
		dump(entry, reply)
		return nil
	}
}

func dump(entry *logrus.Entry, msg interface{}) {
	if !entry.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	scs := spew.NewDefaultConfig()
	scs.Indent = "\t"
	scs.DisablePointerAddresses = true
	entry.Trace(scs.Sdump(msg))
}
