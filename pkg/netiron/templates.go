package netiron

// templates maps a command key to the TextFSM template that extracts
// its records. Adding support for a new firmware output variant means
// editing template data here, not adding parser code: unmatched lines
// are skipped by the matcher, so older firmware simply yields fewer
// fields.
var templates = map[string]string{
	"show_interface": `Value Required PORT (\S+)
Value LINK (\w+)
Value PROTOCOL (\w+)
Value MAC ([0-9a-fA-F.]+)
Value SPEED (\S+)
Value TAG (tagged|untagged)
Value NAME (.*)
Value MTU (\d+)
Value LAST_FLAP (.+)

Start
  ^\S+ is \S+, line protocol is \S+ -> Continue.Record
  ^${PORT} is ${LINK}, line protocol is ${PROTOCOL}
  ^\s+Port state change time: .*\(${LAST_FLAP} ago\)
  ^\s+Hardware is \S+, address is ${MAC}
  ^\s+Configured speed ${SPEED},
  ^\s+Member of VLAN \d+ \(${TAG}\)
  ^\s+Port name is ${NAME}
  ^\s+MTU ${MTU} bytes
`,

	"show_interface_brief_wide": `Value Required PORT (\S+)
Value LINK (Up|Down|Disabled)

Start
  ^${PORT}\s+${LINK}\s+\S+ -> Record
`,

	"show_mpls_interface_brief": `Value Required INTERFACE (\S+)
Value LDP (Yes|No)

Start
  ^${INTERFACE}\s+(?:Up|Down)\s+(?:Up|Down)\s+${LDP}\s+ -> Record
`,

	"show_vlan": `Value Required VLAN (\d+)
Value NAME (\S+)
Value TAGGEDPORTS (.*)
Value UNTAGGEDPORTS (.*)
Value VE (\d+|NONE)

Start
  ^PORT-VLAN -> Continue.Record
  ^PORT-VLAN ${VLAN}, Name ${NAME},
  ^\s+Statically tagged Ports\s+:\s+${TAGGEDPORTS}
  ^\s+Untagged Ports\s+:\s+${UNTAGGEDPORTS}
  ^\s+Associated Virtual Interface Id:\s+${VE}
`,

	"show_mpls_config": `Value Required NAME (\S+)
Value VLAN (\d+)
Value INTERFACE (.*)

Start
  ^\s*vll\s -> Continue.Record
  ^\s*vll ${NAME} \d+
  ^\s+vlan ${VLAN}
  ^\s+tagged ${INTERFACE}
  ^\s+untagged ${INTERFACE}
`,

	"show_running_config_lag": `Value Required NAME ([^"]+)
Value ID (\d+)
Value PORTS (.*)

Start
  ^lag " -> Continue.Record
  ^lag "${NAME}" \S+ id ${ID}
  ^\s+ports ${PORTS}
`,

	"bgp_neighbor_detail": `Value Required REMOTE_ADDRESS (\S+)
Value REMOTE_AS (\d+)
Value TYPE (IBGP|EBGP)
Value ROUTER_ID (\d+\.\d+\.\d+\.\d+)
Value VRF (\S+)
Value DESCRIPTION (.*)
Value STATE (\S+)
Value UPTIME (\S+)
Value KEEPALIVE (\d+)
Value HOLDTIME (\d+)
Value SENT_UPDATES (\d+)
Value RECV_UPDATES (\d+)
Value LOCAL_ADDRESS (\S+)
Value LOCAL_PORT (\d+)
Value REMOTE_PORT (\d+)

Start
  ^\d+\s+IP Address: -> Continue.Record
  ^\d+\s+IP Address: ${REMOTE_ADDRESS}, AS: ${REMOTE_AS} \(${TYPE}\), RouterID: ${ROUTER_ID}, VRF: ${VRF}
  ^\s+Description: ${DESCRIPTION}
  ^\s+State: ${STATE}, Time: ${UPTIME}, KeepAliveTime: ${KEEPALIVE}, HoldTime: ${HOLDTIME}
  ^\s+Sent\s*: \d+\s+${SENT_UPDATES}\s
  ^\s+Received: \d+\s+${RECV_UPDATES}\s
  ^\s+Local host: ${LOCAL_ADDRESS}, Local Port: ${LOCAL_PORT}
  ^\s+Remote host: \S+, Remote Port: ${REMOTE_PORT}
`,

	"show_cpu_lp": `Value Required SLOT (\d+)
Value UTIL (\d+)

Start
  ^\s*${SLOT}\s+${UTIL}\s+\d+\s+\d+\s+\d+\s*$$ -> Record
`,

	"show_memory": `Value Required MODULE (\S+)
Value STATE (\S+)
Value TOTAL (\d+)
Value FREE (\d+)
Value FREE_PCT (\d+)

Start
  ^${MODULE} \(${STATE}\):\s*$$
  ^${MODULE}:\s*$$
  ^\s+Dynamic memory: ${TOTAL} bytes total, ${FREE} bytes free, ${FREE_PCT}% free -> Record
`,

	"show_lldp_neighbors_detail": `Value Required PORT (\S+)
Value CHASSIS_ID (\S+)
Value PORT_ID (\S+)
Value PORT_DESCRIPTION (.*)
Value SYSTEM_NAME (.*)

Start
  ^Local port: -> Continue.Record
  ^Local port: ${PORT}\s*$$
  ^\s+Chassis ID \(MAC address\): ${CHASSIS_ID}
  ^\s+Port ID \(MAC address\): ${PORT_ID}
  ^\s+Port description\s*: ${PORT_DESCRIPTION}
  ^\s+System name\s*: ${SYSTEM_NAME}
`,

	"show_vrf_detail": `Value Required NAME (\S+)
Value RD (\S+)

Start
  ^VRF ${NAME}, default RD ${RD}, -> Record
`,

	"show_ip_interface": `Value Required TYPE (eth|ve|loopback|tunnel|mgmt)
Value NUM (\S+)
Value VRF (\S+)

Start
  ^${TYPE}\s+${NUM}\s+\S+\s+YES\s+\S+\s+\S+\s+\S+\s+${VRF}\s*$$ -> Record
`,

	"show_running_config_interface": `Value Filldown INTERFACE (\S+)
Value Filldown IFNUM (\S+)
Value List IPV4 (\S+)
Value List IPV6 (\S+)
Value VRF (\S+)
Value ACL (\S+)

Start
  ^interface -> Continue.Record
  ^interface ${INTERFACE} ${IFNUM}\s*$$
  ^\s+vrf forwarding ${VRF}
  ^\s+ip address ${IPV4}
  ^\s+ipv6 address ${IPV6}
  ^\s+ip access-group ${ACL} in
`,

	"static_route": `Value Required PREFIX (\S+/\d+)
Value NEXTHOP (\S+)

Start
  ^ip route ${PREFIX} ${NEXTHOP}\s*$$ -> Record
  ^ipv6 route ${PREFIX} ${NEXTHOP}\s*$$ -> Record
`,

	"vrf_static_route": `Value Required VRF (\S+)
Value PREFIX (\S+/\d+)
Value NEXTHOP (\S+)

Start
  ^ip route vrf ${VRF} ${PREFIX} ${NEXTHOP}\s*$$ -> Record
  ^ipv6 route vrf ${VRF} ${PREFIX} ${NEXTHOP}\s*$$ -> Record
`,
}
