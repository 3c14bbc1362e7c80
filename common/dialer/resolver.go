// Package dialer resolves where the management service lives.
package dialer

import (
	"fmt"

	"github.com/bottlesdevs/bottles-cli/protocol"
)

// Resolver resolves a service, getting an address or URL.
type Resolver interface {
	// Resolve resolves a service, getting an address or URL (or an error)
	Resolve() (string, error)
}

// ConstantResolver always returns the same value
type ConstantResolver struct {
	s string
}

// NewConstantResolver creates a ConstantResolver
func NewConstantResolver(s string) *ConstantResolver {
	return &ConstantResolver{s: s}
}

// Resolve returns the constant
func (r *ConstantResolver) Resolve() (string, error) {
	return r.s, nil
}

func (r *ConstantResolver) String() string {
	return r.s
}

// TargetResolver turns the endpoint produced by its delegate into a gRPC dial target
type TargetResolver struct {
	del Resolver
}

// NewTargetResolver creates a TargetResolver over del
func NewTargetResolver(del Resolver) *TargetResolver {
	return &TargetResolver{del: del}
}

// Resolve resolves the delegate and converts the endpoint, e.g. http://[::1]:50052 to [::1]:50052
func (r *TargetResolver) Resolve() (string, error) {
	endpoint, err := r.del.Resolve()
	if err != nil {
		return "", err
	}
	target, err := protocol.Target(endpoint)
	if err != nil {
		return "", fmt.Errorf("could not resolve dial target: %v", err)
	}
	return target, nil
}

// Endpoint returns the unconverted endpoint, for diagnostics
func (r *TargetResolver) Endpoint() string {
	s, err := r.del.Resolve()
	if err != nil {
		return ""
	}
	return s
}
