package migrate

// ValidateMigration is the advisory pre-flight check. It never blocks
// a run by itself; callers decide whether a non-valid result aborts.
func (s *MigrateService) ValidateMigration(mappings []MappingRecord) ValidationResult {
	v := ValidationResult{Valid: true}

	if s.matcher.Len() == 0 {
		v.Valid = false
		v.Issues = append(v.Issues, "no subnets configured")
	}

	if len(mappings) == 0 {
		v.Valid = false
		v.Issues = append(v.Issues, "no mappings found")
		return v
	}

	usable := 0
	for _, mp := range mappings {
		if mp.Mac != "" && mp.Ipaddr != "" {
			usable++
		}
	}
	if usable == 0 {
		v.Valid = false
		v.Issues = append(v.Issues, "no valid mappings")
	}

	return v
}
