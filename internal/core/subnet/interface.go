package subnet

type SubnetMatcherHandler interface {
	FindContainingSubnet(ip string) (string, bool)
	GetSubnetInfo(id string) (SubnetRecord, bool)
	ListAllSubnets() []SubnetRecord
	PrefixLen(id string) (int, bool)
	CIDR(id string) (string, bool)
	Len() int
}
