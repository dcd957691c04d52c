package subnet

import (
	"fmt"
	"strconv"
	"strings"
)

// NewSubnetMatcher builds a matcher from the configured ranges. Records
// with an invalid base address or mask are dropped and reported in the
// returned warnings; construction itself never fails. Input order is
// preserved and decides overlap ties in FindContainingSubnet.
func NewSubnetMatcher(records []SubnetRecord) (*SubnetMatcher, []string) {
	m := &SubnetMatcher{}
	var warnings []string

	for _, rec := range records {
		if !IsValidIPv4(rec.Network) {
			warnings = append(warnings, fmt.Sprintf("subnet %s: invalid network address %q, skipped", rec.Id, rec.Network))
			continue
		}
		prefix, err := parseMask(rec.Mask)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("subnet %s: %v, skipped", rec.Id, err))
			continue
		}

		base, _ := ipv4ToUint(rec.Network)
		mask := prefixToMask(prefix)
		first := base & mask
		last := first | ^mask

		m.ranges = append(m.ranges, subnetRange{
			record: rec,
			prefix: prefix,
			first:  first,
			last:   last,
		})
	}

	return m, warnings
}

// SubnetMatcher answers containment queries against the retained
// ranges. Immutable after construction.
type SubnetMatcher struct {
	ranges []subnetRange
}

// FindContainingSubnet returns the id of the first range (construction
// order) whose interval contains ip. A syntactically invalid ip reports
// not-found; callers wanting to distinguish bad syntax from a genuine
// miss validate with IsValidIPv4 first.
func (m *SubnetMatcher) FindContainingSubnet(ip string) (string, bool) {
	addr, ok := ipv4ToUint(ip)
	if !ok {
		return "", false
	}
	for _, r := range m.ranges {
		if addr >= r.first && addr <= r.last {
			return r.record.Id, true
		}
	}
	return "", false
}

func (m *SubnetMatcher) GetSubnetInfo(id string) (SubnetRecord, bool) {
	for _, r := range m.ranges {
		if r.record.Id == id {
			return r.record, true
		}
	}
	return SubnetRecord{}, false
}

// ListAllSubnets returns the retained records in construction order.
func (m *SubnetMatcher) ListAllSubnets() []SubnetRecord {
	out := make([]SubnetRecord, 0, len(m.ranges))
	for _, r := range m.ranges {
		out = append(out, r.record)
	}
	return out
}

func (m *SubnetMatcher) PrefixLen(id string) (int, bool) {
	for _, r := range m.ranges {
		if r.record.Id == id {
			return r.prefix, true
		}
	}
	return 0, false
}

// CIDR returns the normalized network/prefix form of the range, e.g.
// "10.0.0.0/8" for a record declared as 10.0.0.0 + 255.0.0.0.
func (m *SubnetMatcher) CIDR(id string) (string, bool) {
	for _, r := range m.ranges {
		if r.record.Id == id {
			return fmt.Sprintf("%s/%d", uintToIPv4(r.first), r.prefix), true
		}
	}
	return "", false
}

func (m *SubnetMatcher) Len() int {
	return len(m.ranges)
}

// IsValidIPv4 reports whether s is exactly four dot-separated decimal
// octets, each in 0-255, with no surrounding content.
func IsValidIPv4(s string) bool {
	_, ok := ipv4ToUint(s)
	return ok
}

// IsValidMac accepts six 2-hex-digit groups separated by ':' or '-',
// or a bare 12-hex-digit string, case-insensitive.
func IsValidMac(s string) bool {
	switch len(s) {
	case 12:
		for i := 0; i < 12; i++ {
			if !isHexDigit(s[i]) {
				return false
			}
		}
		return true
	case 17:
		for i := 0; i < 17; i++ {
			if i%3 == 2 {
				if s[i] != ':' && s[i] != '-' {
					return false
				}
				continue
			}
			if !isHexDigit(s[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parseMask resolves both mask notations to a prefix length. A digits
// only value is a prefix literal; a dotted quad must be a left-aligned
// contiguous run of 1-bits.
func parseMask(mask string) (int, error) {
	if mask == "" {
		return 0, fmt.Errorf("empty mask")
	}
	if !strings.Contains(mask, ".") {
		n, err := strconv.Atoi(mask)
		if err != nil {
			return 0, fmt.Errorf("invalid mask %q", mask)
		}
		if n < 0 || n > 32 {
			return 0, fmt.Errorf("prefix length %d out of range", n)
		}
		return n, nil
	}

	v, ok := ipv4ToUint(mask)
	if !ok {
		return 0, fmt.Errorf("invalid netmask %q", mask)
	}
	prefix := 0
	for v != 0 {
		if v&0x80000000 == 0 {
			// a 0-bit with 1-bits after it
			return 0, fmt.Errorf("non-contiguous netmask %q", mask)
		}
		prefix++
		v <<= 1
	}
	return prefix, nil
}

func prefixToMask(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - uint(prefix))
}

func ipv4ToUint(s string) (uint32, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, false
	}
	var addr uint32
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return 0, false
		}
		n := 0
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return 0, false
			}
			n = n*10 + int(p[i]-'0')
		}
		if n > 255 {
			return 0, false
		}
		addr = addr<<8 | uint32(n)
	}
	return addr, true
}

func uintToIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
