package util

import (
	"fmt"
	"net"
	"strings"
)

// IPVersion reports 4 or 6 for a literal IP address.
func IPVersion(addr string) (int, error) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return 0, fmt.Errorf("%w: bad IP address %q", ErrInvalidInput, addr)
	}
	if ip.To4() != nil {
		return 4, nil
	}
	return 6, nil
}

// PrefixVersion reports 4 or 6 for a CIDR prefix. A bare address is
// accepted and treated as a host prefix, matching what the device
// accepts on its route-lookup commands.
func PrefixVersion(prefix string) (int, error) {
	if !strings.Contains(prefix, "/") {
		return IPVersion(prefix)
	}
	ip, _, err := net.ParseCIDR(prefix)
	if err != nil {
		return 0, fmt.Errorf("%w: bad prefix %q", ErrInvalidInput, prefix)
	}
	if ip.To4() != nil {
		return 4, nil
	}
	return 6, nil
}

const maxASN = 4294967295 // max uint32 — 4-byte ASN range

// ValidateASN checks if an AS number is valid (1 to 4294967295).
func ValidateASN(asn int) error {
	if asn < 1 || asn > maxASN {
		return fmt.Errorf("AS number must be between 1 and %d, got %d", maxASN, asn)
	}
	return nil
}

// ValidateVLANID checks if a VLAN ID is within the valid range (1-4094).
func ValidateVLANID(id int) error {
	if id < 1 || id > 4094 {
		return fmt.Errorf("VLAN ID must be between 1 and 4094, got %d", id)
	}
	return nil
}
