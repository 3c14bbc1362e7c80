package stats

/*
This file defines all the metrics being collected.   As new metrics are added please follow this pattern.
Names are scoped per RPC method, e.g. "rpc/CreateBottle/latency_ms".
*/

const (
	/*
		the time from issuing an RPC until its response or error arrived
	*/
	RPCLatency_ms = "latency_ms"

	/*
		the number of RPCs issued
	*/
	RPCRequestCounter = "requests"

	/*
		the number of RPCs that ended with a non-OK status
	*/
	RPCFailureCounter = "failures"

	/*
		the scope all RPC metrics live under
	*/
	RPCScope = "rpc"
)
