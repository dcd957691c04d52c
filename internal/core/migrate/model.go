package migrate

// MappingRecord is one static mapping as extracted from the source
// configuration. Optional fields are empty strings when absent.
type MappingRecord struct {
	Mac      string `json:"mac" yaml:"mac"`
	Ipaddr   string `json:"ipaddr" yaml:"ipaddr"`
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Descr    string `json:"descr,omitempty" yaml:"descr,omitempty"`
	Cid      string `json:"cid,omitempty" yaml:"cid,omitempty"`
}

// ReservationRecord is one converted reservation. Optional fields that
// were absent on the mapping stay empty and are never serialized.
type ReservationRecord struct {
	Uuid     string `json:"uuid" yaml:"uuid"`
	SubnetId string `json:"subnetId" yaml:"subnetId"`
	Mac      string `json:"mac" yaml:"mac"`
	Ipaddr   string `json:"ipaddr" yaml:"ipaddr"`
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Descr    string `json:"descr,omitempty" yaml:"descr,omitempty"`
}

// MigrationResult carries the converted reservations plus the three
// diagnostic sequences, each in input mapping order.
type MigrationResult struct {
	Reservations []ReservationRecord `json:"reservations" yaml:"reservations"`
	Warnings     []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors       []string            `json:"errors,omitempty" yaml:"errors,omitempty"`
	UnmatchedIps []string            `json:"unmatchedIps,omitempty" yaml:"unmatchedIps,omitempty"`
}

type MigrationStats struct {
	TotalMappings int `json:"totalMappings" yaml:"totalMappings"`
	TotalSubnets  int `json:"totalSubnets" yaml:"totalSubnets"`
	Successful    int `json:"successful" yaml:"successful"`
	Failed        int `json:"failed" yaml:"failed"`
	Unmatched     int `json:"unmatched" yaml:"unmatched"`
	Warnings      int `json:"warnings" yaml:"warnings"`
	Errors        int `json:"errors" yaml:"errors"`
}

// ValidationResult is the advisory pre-flight outcome; callers decide
// whether a non-valid result aborts the run.
type ValidationResult struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}
