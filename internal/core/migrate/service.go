package migrate

import (
	"fmt"

	"decanter/internal/core/subnet"

	"github.com/google/uuid"
)

func NewMigrateService(matcher subnet.SubnetMatcherHandler) *MigrateService {
	return &MigrateService{matcher: matcher}
}

// MigrateService converts mapping records into reservation records in
// one synchronous pass. It never aborts the batch for a per-record
// problem; everything is reported through MigrationResult.
type MigrateService struct {
	matcher subnet.SubnetMatcherHandler
}

// Migrate processes the mappings in input order. Each mapping ends in
// exactly one terminal state: a reservation, a warning (missing fields,
// bad MAC syntax, no containing subnet) or an error (bad IP syntax).
func (s *MigrateService) Migrate(mappings []MappingRecord) MigrationResult {
	result := MigrationResult{
		Reservations: []ReservationRecord{},
	}

	for i, mp := range mappings {
		if mp.Mac == "" || mp.Ipaddr == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("mapping %d: missing required fields (mac=%q, ipaddr=%q)", i+1, mp.Mac, mp.Ipaddr))
			continue
		}

		if !subnet.IsValidMac(mp.Mac) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("mapping %d: invalid MAC format %q", i+1, mp.Mac))
			continue
		}

		if !subnet.IsValidIPv4(mp.Ipaddr) {
			result.Errors = append(result.Errors, fmt.Sprintf("mapping %d: invalid IP address %q", i+1, mp.Ipaddr))
			continue
		}

		subnetId, found := s.matcher.FindContainingSubnet(mp.Ipaddr)
		if !found {
			result.UnmatchedIps = append(result.UnmatchedIps, mp.Ipaddr)
			result.Warnings = append(result.Warnings, fmt.Sprintf("mapping %d: no configured subnet contains %s", i+1, mp.Ipaddr))
			continue
		}

		res := ReservationRecord{
			Uuid:     uuid.NewString(),
			SubnetId: subnetId,
			Mac:      mp.Mac,
			Ipaddr:   mp.Ipaddr,
		}
		if mp.Hostname != "" {
			res.Hostname = mp.Hostname
		}
		if mp.Descr != "" {
			res.Descr = mp.Descr
		}
		result.Reservations = append(result.Reservations, res)
	}

	return result
}
