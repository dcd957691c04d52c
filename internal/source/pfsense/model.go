package pfsense

// Document is the slice of a pfSense-style config.xml the migration
// needs: per-interface addressing and the dhcpd static mappings.
// Both lists preserve document order.
type Document struct {
	Interfaces []InterfaceEntry
	Dhcpd      []DhcpdEntry
}

// InterfaceEntry is one child of the <interfaces> section. The element
// name itself ("lan", "opt1", ...) is the subnet identifier.
type InterfaceEntry struct {
	Name   string
	Ipaddr string
	Subnet string
}

// DhcpdEntry is one child of the <dhcpd> section, keyed by the same
// interface name, carrying its static mappings in document order.
type DhcpdEntry struct {
	Name       string
	StaticMaps []StaticMap
}

// StaticMap is one <staticmap> element.
type StaticMap struct {
	Mac      string
	Ipaddr   string
	Hostname string
	Descr    string
	Cid      string
}
