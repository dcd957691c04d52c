package migrate

// GetStats derives summary counts from a finished run. Pure function
// of its inputs.
func (s *MigrateService) GetStats(mappings []MappingRecord, result MigrationResult) MigrationStats {
	return MigrationStats{
		TotalMappings: len(mappings),
		TotalSubnets:  s.matcher.Len(),
		Successful:    len(result.Reservations),
		Failed:        len(mappings) - len(result.Reservations),
		Unmatched:     len(result.UnmatchedIps),
		Warnings:      len(result.Warnings),
		Errors:        len(result.Errors),
	}
}
