package subnet

// SubnetRecord is one configured network range as extracted from the
// source configuration, before any validation.
type SubnetRecord struct {
	// Id is the stable identifier the source document uses for this
	// range (e.g. the interface key "lan", "opt1").
	Id string `json:"id" yaml:"id"`
	// Network is the dotted-quad base address.
	Network string `json:"network" yaml:"network"`
	// Mask is either a prefix length literal ("24") or a dotted-quad
	// netmask ("255.255.255.0").
	Mask string `json:"mask" yaml:"mask"`
}

// subnetRange is a validated record plus its computed address interval.
type subnetRange struct {
	record SubnetRecord
	prefix int
	first  uint32
	last   uint32
}
