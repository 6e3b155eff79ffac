package main

import (
	"errors"
	"net/netip"
	"testing"
)

func TestAllocatorSequence(t *testing.T) {
	alloc := NewAllocator()

	tests := []struct {
		id     int
		subnet string
	}{
		{1, "10.0.1.0/24"},
		{2, "10.0.2.0/24"},
		{3, "10.0.3.0/24"},
	}

	for _, tt := range tests {
		v, err := alloc.Allocate()
		if err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		if v.ID != tt.id {
			t.Errorf("id = %d, want %d", v.ID, tt.id)
		}
		if v.Prefix.String() != tt.subnet {
			t.Errorf("vlan %d subnet = %s, want %s", v.ID, v.Prefix, tt.subnet)
		}
	}
}

func TestSubnetDerivation(t *testing.T) {
	tests := []struct {
		id     int
		subnet string
	}{
		{1, "10.0.1.0/24"},
		{255, "10.0.255.0/24"},
		{256, "10.1.0.0/24"},
		{257, "10.1.1.0/24"},
		{65025, "10.254.1.0/24"},
	}

	for _, tt := range tests {
		if got := subnetForID(tt.id).String(); got != tt.subnet {
			t.Errorf("subnetForID(%d) = %s, want %s", tt.id, got, tt.subnet)
		}
	}
}

func TestAllocatorExhaustion(t *testing.T) {
	alloc := &Allocator{next: MaxVLANID}

	v, err := alloc.Allocate()
	if err != nil {
		t.Fatalf("Allocate at MaxVLANID: %v", err)
	}
	if v.ID != MaxVLANID {
		t.Errorf("id = %d, want %d", v.ID, MaxVLANID)
	}

	if _, err := alloc.Allocate(); !errors.Is(err, ErrVLANsExhausted) {
		t.Errorf("Allocate past MaxVLANID = %v, want ErrVLANsExhausted", err)
	}
}

func TestAllocatorsAreIndependent(t *testing.T) {
	a, b := NewAllocator(), NewAllocator()

	va, err := a.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	vb, err := b.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	if va.ID != 1 || vb.ID != 1 {
		t.Errorf("fresh allocators returned ids %d and %d, want 1 and 1", va.ID, vb.ID)
	}
}

func TestHostAddr(t *testing.T) {
	prefix := netip.MustParsePrefix("10.0.1.0/24")

	tests := []struct {
		n    int
		want string
	}{
		{1, "10.0.1.1"},
		{2, "10.0.1.2"},
		{254, "10.0.1.254"},
	}

	for _, tt := range tests {
		got, err := hostAddr(prefix, tt.n)
		if err != nil {
			t.Fatalf("hostAddr(%s, %d): %v", prefix, tt.n, err)
		}
		if got.String() != tt.want {
			t.Errorf("hostAddr(%s, %d) = %s, want %s", prefix, tt.n, got, tt.want)
		}
	}

	for _, n := range []int{0, -1, 255} {
		if _, err := hostAddr(prefix, n); err == nil {
			t.Errorf("hostAddr(%s, %d) succeeded, want error", prefix, n)
		}
	}
}
