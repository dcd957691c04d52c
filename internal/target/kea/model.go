package kea

// Config is the Kea DHCPv4 configuration fragment the writer emits.
// Field names follow Kea's JSON dialect (hyphenated keys, top-level
// "Dhcp4" wrapper).
type Config struct {
	Dhcp4 Dhcp4 `json:"Dhcp4"`
}

type Dhcp4 struct {
	Subnet4 []Subnet4 `json:"subnet4"`
}

type Subnet4 struct {
	// Id is a sequential numeric id assigned in first-seen order; Kea
	// requires integers here. The source identifier survives in
	// UserContext.
	Id          int            `json:"id"`
	Subnet      string         `json:"subnet"`
	UserContext *SubnetContext `json:"user-context,omitempty"`

	Reservations []Reservation `json:"reservations"`
}

type SubnetContext struct {
	SourceSubnet string `json:"source-subnet"`
}

type Reservation struct {
	HwAddress   string              `json:"hw-address"`
	IpAddress   string              `json:"ip-address"`
	Hostname    string              `json:"hostname,omitempty"`
	UserContext *ReservationContext `json:"user-context,omitempty"`
}

// ReservationContext keeps the fields Kea has no native slot for, so
// no ReservationRecord field is lost in the output document.
type ReservationContext struct {
	Uuid         string `json:"uuid"`
	SourceSubnet string `json:"source-subnet"`
	Description  string `json:"description,omitempty"`
}
