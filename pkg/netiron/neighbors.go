package netiron

import (
	"regexp"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// No. Address MAC Type Age Port
var arpRowRe = regexp.MustCompile(`^\s*\d+\s+(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s*$`)

// GetARPTable returns the ARP table, all VRFs by default or one VRF
// when named. Only Dynamic and Static entries are kept; a Pending row
// is an unresolved probe, not a neighbor.
func (d *Driver) GetARPTable(vrf string) ([]ARPEntry, error) {
	command := "show arp"
	if vrf != "" {
		command += " vrf " + vrf
	}
	out, err := d.sendDefault(command)
	if err != nil {
		return nil, err
	}

	var table []ARPEntry
	for _, line := range strings.Split(out, "\n") {
		m := arpRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[3] != "Dynamic" && m[3] != "Static" {
			continue
		}
		mac, err := util.CanonicalMAC(m[2])
		if err != nil {
			continue
		}
		table = append(table, ARPEntry{
			Interface: d.standardizeLoose(m[5]),
			MAC:       mac,
			IP:        m[1],
			Age:       util.ParseAge(m[4]),
		})
	}
	return table, nil
}

// GetIPv6NeighborsTable returns the IPv6 neighbor cache. Rows carry
// "-" for a MAC still being resolved; those become empty strings.
func (d *Driver) GetIPv6NeighborsTable() ([]NDEntry, error) {
	out, err := d.sendDefault("show ipv6 neighbors")
	if err != nil {
		return nil, err
	}

	var table []NDEntry
	inTable := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "IPv6 Address") {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			continue
		}
		entry := NDEntry{
			IP:        fields[0],
			Age:       util.ParseAge(fields[1]),
			State:     fields[3],
			Interface: d.standardizeLoose(fields[4]),
		}
		if fields[2] != "-" {
			mac, err := util.CanonicalMAC(fields[2])
			if err != nil {
				continue
			}
			entry.MAC = mac
		}
		table = append(table, entry)
	}
	return table, nil
}

// standardizeLoose canonicalizes an interface name, keeping the raw
// spelling when it cannot be resolved. Neighbor tables can reference
// ports that have since left the interface map; a stale row should
// not fail the whole table.
func (d *Driver) standardizeLoose(name string) string {
	std, err := d.StandardizeInterfaceName(name)
	if err != nil {
		util.WithDevice(d.Hostname).Debugf("keeping raw interface name %q: %v", name, err)
		return name
	}
	return std
}
