package netport

import (
	"fmt"
	"math/rand"
	"time"
)

// Fixed offsets from the base port, one per logical service. The windows
// are hundreds to thousands of ports apart, so the forward scans of two
// services cannot cross for any realistic base port.
const (
	OffsetKongHTTP  = 0
	OffsetKongHTTPS = 443
	OffsetPostgres  = 1000
	OffsetPooler    = 1001
	OffsetStudio    = 2000
	OffsetAnalytics = 3000
)

// DefaultMaxScan bounds the forward scan of a single search window.
const DefaultMaxScan = 512

// Default seed range for a randomly chosen base port.
const (
	DefaultSeedMin = 3000
	DefaultSeedMax = 9000
)

// Allocation holds the resolved base port and the six service ports.
// The six ports are pairwise distinct and were each available at the
// moment of the probe. Offset spacing from the base is not guaranteed:
// a busy neighbor shifts a single port forward without moving the rest.
type Allocation struct {
	BasePort  int
	KongHTTP  int
	KongHTTPS int
	Postgres  int
	Pooler    int
	Studio    int
	Analytics int
}

// ServicePort pairs a logical service name with its resolved port.
type ServicePort struct {
	Service string
	Port    int
}

// Ordered returns the six service ports in stable display order.
func (a *Allocation) Ordered() []ServicePort {
	return []ServicePort{
		{"kong_http", a.KongHTTP},
		{"kong_https", a.KongHTTPS},
		{"postgres", a.Postgres},
		{"pooler", a.Pooler},
		{"studio", a.Studio},
		{"analytics", a.Analytics},
	}
}

// Ports returns the six service ports keyed by logical service name.
func (a *Allocation) Ports() map[string]int {
	m := make(map[string]int, 6)
	for _, sp := range a.Ordered() {
		m[sp.Service] = sp.Port
	}
	return m
}

// ExhaustedError reports that a logical service's search window contained
// no available port.
type ExhaustedError struct {
	Service string
	Start   int
	Scanned int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no available port for %s within %d candidates starting at %d",
		e.Service, e.Scanned, e.Start)
}

// Allocator resolves the service port set against a host. Fields may be
// adjusted between NewAllocator and Allocate; the Probe hook exists so
// tests can stub out the network.
type Allocator struct {
	Host    string
	Timeout time.Duration
	MaxScan int
	SeedMin int
	SeedMax int
	Probe   ProbeFunc
}

// NewAllocator returns an Allocator probing localhost with default bounds.
func NewAllocator() *Allocator {
	return &Allocator{
		Host:    "localhost",
		Timeout: DefaultProbeTimeout,
		MaxScan: DefaultMaxScan,
		SeedMin: DefaultSeedMin,
		SeedMax: DefaultSeedMax,
	}
}

// Allocate resolves the base port and the six service ports.
//
// A basePort of zero selects a uniformly random seed in [SeedMin, SeedMax]
// and resolves the base to the first available port at or above it. An
// explicit basePort is used as given, without probing the base itself; the
// kong_http window starts there anyway, so an occupied explicit base only
// shifts kong_http forward while the other windows keep their offsets.
func (al *Allocator) Allocate(basePort int) (*Allocation, error) {
	// Ports assigned earlier in this invocation count as occupied for every
	// later window. Without this, adjacent windows collide: with postgres's
	// start and the next port busy, postgres shifts to start+2 and pooler's
	// scan from start+1 would land on the same start+2.
	taken := make(map[int]bool, 6)

	base := basePort
	if base == 0 {
		seed := al.SeedMin + rand.Intn(al.SeedMax-al.SeedMin+1)
		resolved, err := al.findAvailable("base", seed, taken)
		if err != nil {
			return nil, err
		}
		// The base itself is not a service port; kong_http's window starts
		// here and claims it.
		base = resolved
	}

	alloc := &Allocation{BasePort: base}
	targets := []struct {
		service string
		offset  int
		dst     *int
	}{
		{"kong_http", OffsetKongHTTP, &alloc.KongHTTP},
		{"kong_https", OffsetKongHTTPS, &alloc.KongHTTPS},
		{"postgres", OffsetPostgres, &alloc.Postgres},
		{"pooler", OffsetPooler, &alloc.Pooler},
		{"studio", OffsetStudio, &alloc.Studio},
		{"analytics", OffsetAnalytics, &alloc.Analytics},
	}
	for _, t := range targets {
		port, err := al.findAvailable(t.service, base+t.offset, taken)
		if err != nil {
			return nil, err
		}
		*t.dst = port
		taken[port] = true
	}
	return alloc, nil
}

// findAvailable linearly probes forward from start until a port is found
// that is both free on the host and not in taken, giving up after MaxScan
// candidates.
func (al *Allocator) findAvailable(service string, start int, taken map[int]bool) (int, error) {
	for i := 0; i < al.MaxScan; i++ {
		port := start + i
		if port > 65535 {
			break
		}
		if !taken[port] && al.probe(port) {
			return port, nil
		}
	}
	return 0, &ExhaustedError{Service: service, Start: start, Scanned: al.MaxScan}
}

func (al *Allocator) probe(port int) bool {
	if al.Probe != nil {
		return al.Probe(al.Host, port)
	}
	return IsAvailable(al.Host, port, al.Timeout)
}
