package protocol

import (
	"fmt"
	"net"
	"net/url"
)

// DefaultEndpoint is where the bottles management service listens.
const DefaultEndpoint = "http://[::1]:50052"

// Target converts an endpoint into a gRPC dial target.
// Endpoints are either http URLs or bare host:port pairs; there is no TLS support.
func Target(endpoint string) (string, error) {
	if endpoint == "" {
		return "", fmt.Errorf("Empty endpoint")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// not a URL, expect host:port
		if _, _, splitErr := net.SplitHostPort(endpoint); splitErr != nil {
			return "", fmt.Errorf("Invalid endpoint %q: %v", endpoint, splitErr)
		}
		return endpoint, nil
	}
	if u.Scheme != "http" {
		return "", fmt.Errorf("Unsupported scheme %q in endpoint %q", u.Scheme, endpoint)
	}
	if u.Port() == "" {
		return "", fmt.Errorf("Endpoint %q has no port", endpoint)
	}
	return u.Host, nil
}
