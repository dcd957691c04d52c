package migrate

import (
	"fmt"
	"strings"

	"decanter/internal/utils"
)

// GenerateReport renders the run as human-readable text. Section order
// is fixed: statistics, created reservations, unmatched IPs, warnings,
// errors.
func (s *MigrateService) GenerateReport(result MigrationResult, stats MigrationStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DHCP static mapping migration report (run %s)\n", utils.NewRunId())
	b.WriteString("==================================================\n\n")

	b.WriteString("Statistics\n")
	fmt.Fprintf(&b, "  mappings:     %d\n", stats.TotalMappings)
	fmt.Fprintf(&b, "  subnets:      %d\n", stats.TotalSubnets)
	fmt.Fprintf(&b, "  migrated:     %d\n", stats.Successful)
	fmt.Fprintf(&b, "  failed:       %d\n", stats.Failed)
	fmt.Fprintf(&b, "  unmatched:    %d\n", stats.Unmatched)
	fmt.Fprintf(&b, "  warnings:     %d\n", stats.Warnings)
	fmt.Fprintf(&b, "  errors:       %d\n", stats.Errors)

	b.WriteString("\nReservations\n")
	if len(result.Reservations) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, r := range result.Reservations {
		where := r.SubnetId
		if cidr, ok := s.matcher.CIDR(r.SubnetId); ok {
			where = fmt.Sprintf("%s (%s)", r.SubnetId, cidr)
		}
		line := fmt.Sprintf("  %s -> %s in %s", r.Mac, r.Ipaddr, where)
		if r.Hostname != "" {
			line += " host=" + r.Hostname
		}
		if r.Descr != "" {
			line += fmt.Sprintf(" %q", r.Descr)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\nUnmatched IPs\n")
	if len(result.UnmatchedIps) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, ip := range result.UnmatchedIps {
		fmt.Fprintf(&b, "  %s\n", ip)
	}

	b.WriteString("\nWarnings\n")
	if len(result.Warnings) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "  %s\n", w)
	}

	b.WriteString("\nErrors\n")
	if len(result.Errors) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "  %s\n", e)
	}

	return b.String()
}
