// Package netport finds free TCP ports for the generated service stack.
//
// A probe is a point-in-time check, not a reservation: a port reported
// available can still be taken by another process before the generated
// stack starts. That race is accepted and not retried.
package netport

import (
	"net"
	"strconv"
	"time"
)

// DefaultProbeTimeout bounds a single probe connect so an unreachable host
// cannot stall generation.
const DefaultProbeTimeout = 2 * time.Second

// ProbeFunc reports whether host:port is currently bindable. Implementations
// must treat a refused or timed-out connect as available.
type ProbeFunc func(host string, port int) bool

// IsAvailable dials host:port once and reports true when nothing answers,
// false when something is already listening.
func IsAvailable(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return true
	}
	conn.Close()
	return false
}
