package main

import (
	"errors"
	"fmt"
	"net/netip"
)

// ErrRouteNotFound is returned when removing a route that is not in a table.
var ErrRouteNotFound = errors.New("route not in table")

var defaultDest = netip.MustParsePrefix("0.0.0.0/0")

// Route maps a destination network to a next-hop address. Routes are plain
// values and compare by field.
type Route struct {
	Dest    netip.Prefix
	NextHop netip.Addr
}

// IsDefault reports whether the route matches all traffic.
func (r Route) IsDefault() bool {
	return r.Dest == defaultDest
}

func (r Route) String() string {
	return fmt.Sprintf("%s via %s", r.Dest, r.NextHop)
}

// RoutingTable is the ordered route list owned by one device. Entries keep
// insertion order and duplicates are allowed; rendering consumes them as-is.
type RoutingTable struct {
	routes []Route
}

// Add appends a route without any collision check.
func (t *RoutingTable) Add(r Route) {
	t.routes = append(t.routes, r)
}

// Remove deletes the first exact match and fails if the route is absent.
func (t *RoutingTable) Remove(r Route) error {
	for i, have := range t.routes {
		if have == r {
			t.routes = append(t.routes[:i], t.routes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRouteNotFound, r)
}

// Routes returns the entries in insertion order.
func (t *RoutingTable) Routes() []Route {
	return t.routes
}

// Len returns the number of entries.
func (t *RoutingTable) Len() int {
	return len(t.routes)
}
