package netiron

// LinkState is the tri-state administrative/operational state of an
// interface. The device reports "disabled" for administratively shut
// ports, which must not be collapsed into "down".
type LinkState string

const (
	LinkUp       LinkState = "up"
	LinkDown     LinkState = "down"
	LinkDisabled LinkState = "disabled"
)

// Up reports whether the link is operationally up.
func (s LinkState) Up() bool { return s == LinkUp }

// Enabled reports whether the port is administratively enabled.
func (s LinkState) Enabled() bool { return s != LinkDisabled }

func linkStateOf(raw string) LinkState {
	switch raw {
	case "up", "Up":
		return LinkUp
	case "disabled", "Disabled":
		return LinkDisabled
	default:
		return LinkDown
	}
}

// Interface is one normalized interface snapshot. Name is the canonical
// form produced by the name normalizer and is unique across the whole
// interface map, including synthesized lag<id> entries.
type Interface struct {
	Name        string
	Link        LinkState
	Description string
	MAC         string
	// SpeedMbit is the configured speed in megabits; 0 when unknown.
	// SpeedRaw preserves the device's own rendering so callers can
	// re-normalize with a different unit base.
	SpeedMbit   int
	SpeedRaw    string
	MTU         int
	LastFlapped float64
	MPLSEnabled bool
	// Children lists member interfaces for lag<id> entries and the
	// physical ports sharing the VLAN for Ve interfaces.
	Children []string
}

// VLAN is one VLAN snapshot. Interfaces is the union of tagged,
// untagged, VE, and VLL-derived membership with duplicates removed,
// in order of first appearance.
type VLAN struct {
	ID         int
	Name       string
	Interfaces []string
}

// InterfaceVLANMembership is the per-interface view of VLAN
// membership. Mode is "access" or "trunk". AccessVLAN and NativeVLAN
// are -1 when unset. A port carrying both tagged and untagged traffic
// keeps its untagged VLAN as NativeVLAN, not AccessVLAN.
type InterfaceVLANMembership struct {
	Mode       string
	AccessVLAN int
	TrunkVLANs []int
	NativeVLAN int
}

// InterfaceAddresses holds the L3 configuration extracted from the
// running config for one interface.
type InterfaceAddresses struct {
	IPv4 map[string]int // address -> prefix length
	IPv6 map[string]int
	VRF  string
	ACL  string
}

// PrefixCounters are the per-address-family prefix counts from the BGP
// summary (or the per-peer routes-summary recovery path). Received is
// always Accepted+Filtered.
type PrefixCounters struct {
	Received int
	Accepted int
	Filtered int
	Sent     int
	ToSend   int
}

// BGPPeer is a summary-stream peer record. Counters is nil when the
// summary line could not be parsed at all; it is never zeroed to stand
// in for "absent".
type BGPPeer struct {
	RemoteAddress string
	AFI           int // 4 or 6
	LocalAS       int
	RemoteAS      int
	State         string
	RemoteID      string
	Description   string
	Uptime        string
	Counters      *PrefixCounters
}

// IsEstablished reports whether the session is in ESTABLISHED state.
func (p *BGPPeer) IsEstablished() bool { return p.State == "ESTABLISHED" }

// IsEnabled reports whether the session is administratively enabled.
func (p *BGPPeer) IsEnabled() bool { return p.State != "ADMIN_SHUTDOWN" }

// BGPSummary is one address family's parsed summary output.
type BGPSummary struct {
	RouterID string
	LocalAS  int
	AFI      int
	Peers    map[string]*BGPPeer
	// Order preserves peer encounter order; Peers alone loses it.
	Order []string
}

// BGPPeerDetail is a neighbor-detail record merged with the matching
// summary peer. Counters stays nil when the peer never appeared in the
// summary stream.
type BGPPeerDetail struct {
	RemoteAddress string
	RemoteAS      int
	LocalAS       int
	External      bool // EBGP vs IBGP
	RouterID      string
	RoutingTable  string
	Description   string
	State         string
	PreviousState string
	Uptime        string
	HoldTime      int
	KeepaliveTime int
	LocalAddress  string
	LocalPort     int
	RemotePort    int
	InputUpdates  int
	OutputUpdates int
	Counters      *PrefixCounters
}

// BGPPeerGroups groups peer details by routing table (VRF) and then by
// remote AS, preserving encounter order within each group.
type BGPPeerGroups map[string]map[int][]*BGPPeerDetail

// BGPRoute is one entry from a BGP route lookup. Index is 1-based as
// reported by the device and not guaranteed contiguous.
type BGPRoute struct {
	Index     int
	Prefix    string
	NextHop   string
	MED       int
	LocalPref int
	Weight    int
	Status    string
	Best      bool
	ASPath    []string
}

// BGPRouteTable is the result of a route lookup for one prefix.
type BGPRouteTable struct {
	Prefix         string
	IPVersion      int
	Routes         []BGPRoute
	LastUpdate     string
	PathsInstalled int
}

// RouteEntry is a protocol-neutral route as returned by RouteTo.
type RouteEntry struct {
	Protocol         string
	NextHop          string
	CurrentActive    bool
	SelectedNextHop  bool
	Preference       int
	RoutingTable     string
	LocalPreference  int
	MED              int
	Weight           int
	Status           string
	ASPath           []string
}

// ARPEntry is one ARP table row. Only Dynamic and Static entries are
// retained; Pending entries are dropped during parsing.
type ARPEntry struct {
	Interface string
	MAC       string
	IP        string
	Age       float64
}

// NDEntry is one IPv6 neighbor table row.
type NDEntry struct {
	Interface string
	MAC       string
	IP        string
	Age       float64
	State     string
}

// MACEntry is one row of the MAC address table.
type MACEntry struct {
	MAC       string
	Interface string
	VLAN      int
	Static    bool
}

// InterfaceCounters are the octet/packet/error counters for one port.
type InterfaceCounters struct {
	RxOctets           uint64
	TxOctets           uint64
	RxUnicastPackets   uint64
	TxUnicastPackets   uint64
	RxBroadcastPackets uint64
	TxBroadcastPackets uint64
	RxMulticastPackets uint64
	TxMulticastPackets uint64
	RxErrors           uint64
	TxErrors           uint64
	RxDiscards         uint64
	TxDiscards         uint64
}

// TemperatureSensor is one chassis temperature reading.
type TemperatureSensor struct {
	Celsius    float64
	IsAlert    bool
	IsCritical bool
}

// FanStatus is one chassis fan.
type FanStatus struct {
	OK    bool
	Speed string
}

// PowerSupply is one chassis PSU.
type PowerSupply struct {
	OK       bool
	Capacity string
}

// MemoryUsage is one module's memory snapshot in bytes.
type MemoryUsage struct {
	Available int
	Used      int
}

// Environment aggregates chassis sensor data. CPUDetail and
// MemoryDetail carry per-module breakdowns (MP plus each LP).
type Environment struct {
	CPUUsagePct  int
	CPUDetail    map[string]int
	Memory       MemoryUsage
	MemoryDetail map[string]MemoryUsage
	Temperature  map[string]TemperatureSensor
	Fans         map[string]FanStatus
	Power        map[string]PowerSupply
}

// Facts are the device identity fields.
type Facts struct {
	Vendor        string
	Model         string
	SerialNumber  string
	OSVersion     string
	Hostname      string
	UptimeSeconds float64
	Interfaces    []string
}

// LLDPNeighbor is one remote system seen on a local port.
type LLDPNeighbor struct {
	Hostname string
	Port     string
}

// NetworkInstance is a VRF (or the default instance).
type NetworkInstance struct {
	Name               string
	Type               string // DEFAULT_INSTANCE or L3VRF
	RouteDistinguisher string
	Interfaces         []string
}

// StaticRoute is one configured static route. VRF is empty for routes
// in the default table.
type StaticRoute struct {
	Prefix  string
	NextHop string
	VRF     string
}

// User is one local account from the device configuration.
type User struct {
	Password string
	Level    int
}

// NTPAssociation is one row of "show ntp associations".
type NTPAssociation struct {
	Remote       string
	ReferenceID  string
	Synchronized bool
	Stratum      int
	When         string
	HostPoll     int
	Reachability int
	Delay        float64
	Offset       float64
	Jitter       float64
}

// SNMPCommunity is one configured community string.
type SNMPCommunity struct {
	Mode string
	ACL  string
}

// SNMPInfo is the device SNMP configuration.
type SNMPInfo struct {
	ChassisID   string
	Contact     string
	Location    string
	Communities map[string]SNMPCommunity
}

// PingProbe is one echo reply.
type PingProbe struct {
	IPAddress string
	RTT       float64
}

// PingResult summarizes a ping run.
type PingResult struct {
	ProbesSent int
	PacketLoss int
	RTTMin     float64
	RTTAvg     float64
	RTTMax     float64
	Probes     []PingProbe
}

// TracerouteHop is one TTL step with its three probe RTTs. A probe
// that timed out has RTT "*".
type TracerouteHop struct {
	IPAddress string
	HostName  string
	RTTs      [3]string
}

// TracerouteResult maps hop number to hop data.
type TracerouteResult struct {
	Hops map[int]TracerouteHop
}
