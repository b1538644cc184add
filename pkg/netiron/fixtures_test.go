package netiron

// Canned device outputs shared across the reconciler tests. The shapes
// mirror NetIron MLX firmware output closely enough to exercise every
// template rule.

const showInterfaceFixture = `GigabitEthernet2/4 is up, line protocol is up
  Port state change time: Jan 10 11:22:33 (10 days 2:3:4 ago)
  Hardware is GigabitEthernet, address is 0000.0086.5fc0 (bia 0000.0086.5fc0)
  Configured speed 1G, actual 1G, configured duplex fdx, actual fdx
  Member of VLAN 100 (untagged), port is in untagged mode, port state is Forwarding
  Port name is uplink to core
  MTU 9216 bytes, encapsulation ethernet
GigabitEthernet2/5 is down, line protocol is down
  Hardware is GigabitEthernet, address is 0000.0086.5fc1 (bia 0000.0086.5fc1)
  Configured speed auto, actual unknown, configured duplex fdx, actual unknown
  Port name is
  MTU 9216 bytes, encapsulation ethernet
10GigabitEthernet4/1 is disabled, line protocol is down
  Hardware is 10GigabitEthernet, address is 0000.0086.5fc2 (bia 0000.0086.5fc2)
  Configured speed 10G, actual unknown, configured duplex fdx, actual unknown
  Port name is access leg
  MTU 9216 bytes, encapsulation ethernet
Ve10 is up, line protocol is up
  Hardware is Virtual Ethernet, address is 0000.0086.5fd0 (bia 0000.0086.5fd0)
  Port name is tenant gateway
  MTU 1500 bytes, encapsulation ethernet
EthernetMgmt1 is up, line protocol is up
  Hardware is Ethernet, address is 0000.0086.5fe0 (bia 0000.0086.5fe0)
  Configured speed 100M, actual 100M, configured duplex fdx, actual fdx
  MTU 1500 bytes, encapsulation ethernet
`

const showInterfaceBriefFixture = `Port    Link    State   Dupl Speed Trunk Tag Pri MAC            Name
2/4     Up      Forward Full 1G    None  No  0   0000.0086.5fc0 uplink
2/5     Down    None    None None  None  No  0   0000.0086.5fc1
4/1     Disabled None   None None  None  No  0   0000.0086.5fc2 access
`

const showMPLSInterfaceFixture = `Interface     State  MPLS-state  LDP   RSVP  Admin-Group
e2/4          Up     Up          Yes   Yes   N/A
e2/5          Up     Up          No    Yes   N/A
`

const showVLANFixture = `Total PORT-VLAN entries: 2

PORT-VLAN 100, Name CORE, Priority Level -, Priority Force 0, Creation Type STATIC
 Topo HW idx    : 81    Topo SW idx: 257    Topo next vlan: 0
 L2 protocols   : NONE
 Statically tagged Ports    : ethe 2/4 to 2/5
 Untagged Ports : ethe 4/1
 Associated Virtual Interface Id: 10

PORT-VLAN 150, Name EDGE, Priority Level -, Priority Force 0, Creation Type STATIC
 L2 protocols   : NONE
 Statically tagged Ports    : ethe 2/4
 Associated Virtual Interface Id: NONE
`

const showMPLSConfigFixture = `router mpls

 mpls-interface e2/4

 vll CUST1 40000
  vll-peer 10.0.0.2
  vlan 200
   tagged e 2/4

 vll CUST2 40001
  vll-peer 10.0.0.3
  vlan 150
   tagged e 2/5
`

const showLAGConfigFixture = `lag "CORE-LAG" dynamic id 7
 ports ethe 2/4 ethe 2/5
 primary-port 2/4
 deploy
`

const bgpSummaryV4Fixture = `  BGP4 Summary
  Router ID: 10.0.0.1   Local AS Number: 65000
  Confederation Identifier: not configured
  Number of Neighbors Configured: 2, UP: 2
  Number of Routes Installed: 10, Uses 860 bytes
  Neighbor Address  AS#         State   Time     Rt:Accepted Filtered Sent ToSend
  10.1.1.1          65001       ESTAB   10d 2h3m      1000        5      900    0
  10.1.1.2          65002       ESTAB   5d12h1m    1466        1191838648268     0
`

const bgpNeighborsV4Fixture = `1   IP Address: 10.1.1.1, AS: 65001 (EBGP), RouterID: 10.9.9.9, VRF: default-vrf
    Description: transit peer
    State: ESTABLISHED, Time: 10d2h3m4s, KeepAliveTime: 10, HoldTime: 30
       Messages:    Open    Update   KeepAlive   Notification   Refresh-Req
          Sent    : 1       200      5000        0              0
          Received: 1       180      5000        0              0
    TCP Connection state: ESTABLISHED
       Local host: 10.1.1.0, Local Port: 179
       Remote host: 10.1.1.1, Remote Port: 8000
2   IP Address: 10.1.1.2, AS: 65002 (IBGP), RouterID: 10.8.8.8, VRF: default-vrf
    State: ESTABLISHED, Time: 5d12h1m9s, KeepAliveTime: 60, HoldTime: 180
       Messages:    Open    Update   KeepAlive   Notification   Refresh-Req
          Sent    : 1       90       2000        0              0
          Received: 1       70       2000        0              0
       Local host: 10.1.1.3, Local Port: 179
       Remote host: 10.1.1.2, Remote Port: 8001
`

const bgpRoutesSummaryFixture = `    There are 1477 received routes from neighbor 10.1.1.2
Routes Accepted/Installed:1466, Filtered/Kept:11, Filtered:11
Routes Advertised:250, To be Sent:0, To be Withdrawn:0
`

const bgpRouteV4Fixture = `Number of BGP Routes matching display condition : 2
Status codes: s suppressed, d damped, h history, * valid, > best, i internal, S stale
       Prefix             Next Hop        MED        LocPrf     Weight Status
1      47.184.0.0/14      74.43.96.220    0          320        0      BE
         AS_PATH: 6400 22822
2      47.184.0.0/14      74.43.96.221    10         100        0      E
         AS_PATH: 6401 22822
       Last update to IP routing table: 0h11m38s, 1 path(s) installed
`

const bgpRouteV6Fixture = `Number of BGP Routes matching display condition : 1
Status codes: s suppressed, d damped, h history, * valid, > best, i internal, S stale
       Prefix             Next Hop        MED        LocPrf     Weight Status
1      2001:db8::/32      2001:db8:ffff::1
                                          0          320        0      BI
         AS_PATH: 64999
`

const showARPFixture = `Total number of ARP entries: 3
Entries in default routing instance:
No.   IP Address      MAC Address     Type     Age Port
1     10.57.243.1     0000.0086.5fc0  Dynamic  0   2/4
2     10.57.243.2     0000.0086.5fc1  Pending  None 2/5
3     10.57.243.3     0000.0086.5fc2  Static   5   mgmt1
`

const showIPv6NeighborsFixture = `Total number of Neighbor entries: 2
IPv6 Address                    Age MAC Address    State Interface
2001:db8:1::1                     0 0000.0086.aaaa REACH 2/4
2001:db8:1::2                     3 -              STALE 4/1
`

const showChassisFixture = `*** NetIron MLX-4 chassis ***
Power 1 (AC - Regular): Installed (OK)
Power 2: not present
Fan 1: Status = OK, Speed = LOW (50%)
Fan 2: Status = FAILED, Speed = N/A
Fan controlled temperature: 34.9 deg-C
LP1 Sensor1 Temperature 40.250 deg-C
LP1 Sensor2 Temperature 81.500 deg-C
MP Sensor1 Temperature 92.000 deg-C
`

const showMemoryFixture = `MP (active):
  Dynamic memory: 1073741824 bytes total, 536870912 bytes free, 50% free
LP1 (alive):
  Dynamic memory: 268435456 bytes total, 134217728 bytes free, 50% free
`

const showCPUAvgFixture = `... cpu-utilization average ...
idle      96      95       96       96
`

const showCPULPFixture = `SLOT #:  1 sec:  5 sec:  60 sec:  300 sec:
1        4       4        5        5
`

const showVersionFixture = `System Mode: MLX
Chassis: NetIron 4-slot (Serial #: GOLD1234F00, Part #: 35549-000C)
NI-X-SF Switch Fabric Module 1 (Serial #: SA21091164, Part #: 31523-100A)
IronWare : Version 5.8.0fT163 Copyright (c) Brocade Communications Systems, Inc.
`

const showUptimeFixture = `  Active MP  Slot  9 Uptime  227 days 3 hours 12 minutes 51 seconds
  Standby MP Slot 10 Uptime  227 days 3 hours 10 minutes 2 seconds
`
