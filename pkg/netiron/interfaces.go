package netiron

import (
	"fmt"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// GetInterfaces builds the full interface map for the session. Four
// outputs feed it: the detailed interface listing supplies the base
// records, the MPLS interface table flags label-switched ports, the
// LAG running config synthesizes lag<id> aggregates, and VLAN
// membership gives each Ve interface its physical children.
func (d *Driver) GetInterfaces() (map[string]*Interface, error) {
	out, err := d.cache.getOrFetch(cmdShowInterface)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*Interface)
	for _, rec := range extract("show_interface", out) {
		name, err := d.StandardizeInterfaceName(rec["PORT"])
		if err != nil {
			return nil, err
		}
		iface := &Interface{
			Name:        name,
			Link:        linkStateOf(rec["LINK"]),
			Description: strings.TrimSpace(rec["NAME"]),
			SpeedMbit:   util.ParseSpeed(rec["SPEED"]),
			SpeedRaw:    rec["SPEED"],
			MTU:         util.Atoi(rec["MTU"], 0),
			LastFlapped: util.ParseDaysHMS(rec["LAST_FLAP"]),
		}
		if mac, err := util.CanonicalMAC(rec["MAC"]); err == nil {
			iface.MAC = mac
		}
		result[name] = iface
	}

	if err := d.overlayMPLS(result); err != nil {
		return nil, err
	}
	if err := d.synthesizeLAGs(result); err != nil {
		return nil, err
	}
	if err := d.attachVeChildren(result); err != nil {
		return nil, err
	}
	return result, nil
}

// overlayMPLS marks interfaces running LDP. Presence in the MPLS
// interface table alone is not enough: an RSVP-only interface lists
// there with LDP "No" and stays unmarked, as does anything absent from
// the table.
func (d *Driver) overlayMPLS(ifaces map[string]*Interface) error {
	out, err := d.cache.getOrFetch(cmdShowMPLSInterface)
	if err != nil {
		return err
	}
	for _, rec := range extract("show_mpls_interface_brief", out) {
		if rec["LDP"] != "Yes" {
			continue
		}
		name, err := d.StandardizeInterfaceName(rec["INTERFACE"])
		if err != nil {
			return err
		}
		if iface, ok := ifaces[name]; ok {
			iface.MPLSEnabled = true
		}
	}
	return nil
}

// synthesizeLAGs adds a lag<id> entry per configured LAG. The device
// has no interface record for the aggregate itself, so state is
// derived from the members: up if any member is up, disabled only if
// every member is disabled.
func (d *Driver) synthesizeLAGs(ifaces map[string]*Interface) error {
	out, err := d.cache.getOrFetch(cmdShowLAGConfig)
	if err != nil {
		return err
	}
	for _, rec := range extract("show_running_config_lag", out) {
		members, err := d.expandPortList(rec["PORTS"])
		if err != nil {
			return err
		}
		name := fmt.Sprintf("lag%s", rec["ID"])
		lag := &Interface{
			Name:        name,
			Link:        LinkDisabled,
			Description: rec["NAME"],
			Children:    members,
		}
		for _, member := range members {
			child, ok := ifaces[member]
			if !ok {
				continue
			}
			if child.Link == LinkUp {
				lag.Link = LinkUp
			} else if child.Link == LinkDown && lag.Link != LinkUp {
				lag.Link = LinkDown
			}
			if lag.SpeedMbit == 0 {
				lag.SpeedMbit = child.SpeedMbit
				lag.SpeedRaw = child.SpeedRaw
			}
			if lag.MTU == 0 {
				lag.MTU = child.MTU
			}
		}
		ifaces[name] = lag
	}
	return nil
}

// attachVeChildren gives each Ve interface the physical ports of its
// VLAN. A Ve has no members of its own; its traffic rides the ports
// tagged or untagged into the same VLAN.
func (d *Driver) attachVeChildren(ifaces map[string]*Interface) error {
	vlans, err := d.GetVLANs()
	if err != nil {
		return err
	}
	for _, vlan := range vlans {
		var ve *Interface
		for _, member := range vlan.Interfaces {
			if strings.HasPrefix(member, "Ve") {
				ve = ifaces[member]
				break
			}
		}
		if ve == nil {
			continue
		}
		for _, member := range vlan.Interfaces {
			if member != ve.Name {
				ve.Children = append(ve.Children, member)
			}
		}
	}
	return nil
}
