package migrate

type MigrateServiceHandler interface {
	Migrate(mappings []MappingRecord) MigrationResult
	GetStats(mappings []MappingRecord, result MigrationResult) MigrationStats
	ValidateMigration(mappings []MappingRecord) ValidationResult
	GenerateReport(result MigrationResult, stats MigrationStats) string
}
