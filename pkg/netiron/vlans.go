package netiron

import (
	"sort"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// GetVLANs merges the VLAN table with VLL endpoint configuration. The
// VLAN table alone misses VLLs: a VLL endpoint binds a port into a
// VLAN without that VLAN necessarily appearing in "show vlan", and a
// VLL on an already-listed VLAN adds membership the table does not
// show. Membership is a union, in order of first appearance, with
// duplicates removed.
func (d *Driver) GetVLANs() (map[int]*VLAN, error) {
	out, err := d.cache.getOrFetch(cmdShowVLAN)
	if err != nil {
		return nil, err
	}

	vlans := make(map[int]*VLAN)
	for _, rec := range extract("show_vlan", out) {
		id := util.Atoi(rec["VLAN"], 0)
		if util.ValidateVLANID(id) != nil {
			continue
		}
		members, err := d.vlanMembers(rec["VE"], rec["TAGGEDPORTS"], rec["UNTAGGEDPORTS"])
		if err != nil {
			return nil, err
		}
		vlans[id] = &VLAN{
			ID:         id,
			Name:       rec["NAME"],
			Interfaces: members,
		}
	}

	if err := d.mergeVLLs(vlans); err != nil {
		return nil, err
	}
	for _, vlan := range vlans {
		vlan.Interfaces = dedupStrings(vlan.Interfaces)
	}
	return vlans, nil
}

// mergeVLLs folds VLL endpoints from the MPLS config into the VLAN
// map. A VLL naming a VLAN absent from the table synthesizes that
// VLAN, carrying the VLL's name.
func (d *Driver) mergeVLLs(vlans map[int]*VLAN) error {
	out, err := d.cache.getOrFetch(cmdShowMPLSConfig)
	if err != nil {
		return err
	}
	for _, rec := range extract("show_mpls_config", out) {
		id := util.Atoi(rec["VLAN"], 0)
		if util.ValidateVLANID(id) != nil {
			continue
		}
		vlan, ok := vlans[id]
		if !ok {
			vlan = &VLAN{ID: id, Name: rec["NAME"]}
			vlans[id] = vlan
		}
		for _, raw := range strings.Fields(rec["INTERFACE"]) {
			if raw == "ethe" || raw == "ethernet" || raw == "e" {
				continue
			}
			name, err := d.StandardizeInterfaceName(raw)
			if err != nil {
				return err
			}
			vlan.Interfaces = append(vlan.Interfaces, name)
		}
	}
	return nil
}

// GetInterfacesVLANs inverts the VLAN tables into a per-interface
// membership view: the VLAN each port carries untagged and the VLANs
// it carries tagged, including membership that only exists through a
// VLL endpoint. Mode comes from the interface listing (untagged
// members and Ve interfaces are access ports); synthesized lag<id>
// entries are always trunks.
func (d *Driver) GetInterfacesVLANs() (map[string]*InterfaceVLANMembership, error) {
	out, err := d.cache.getOrFetch(cmdShowInterface)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*InterfaceVLANMembership)
	for _, rec := range extract("show_interface", out) {
		name, err := d.StandardizeInterfaceName(rec["PORT"])
		if err != nil {
			return nil, err
		}
		mode := "trunk"
		if rec["TAG"] == "untagged" || strings.HasPrefix(name, "Ve") {
			mode = "access"
		}
		result[name] = &InterfaceVLANMembership{
			Mode:       mode,
			AccessVLAN: -1,
			NativeVLAN: -1,
		}
	}

	out, err = d.cache.getOrFetch(cmdShowLAGConfig)
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_running_config_lag", out) {
		result["lag"+rec["ID"]] = &InterfaceVLANMembership{
			Mode:       "trunk",
			AccessVLAN: -1,
			NativeVLAN: -1,
		}
	}

	out, err = d.cache.getOrFetch(cmdShowVLAN)
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_vlan", out) {
		id := util.Atoi(rec["VLAN"], 0)
		if util.ValidateVLANID(id) != nil {
			continue
		}
		access, err := d.vlanMembers(rec["VE"], "", rec["UNTAGGEDPORTS"])
		if err != nil {
			return nil, err
		}
		tagged, err := d.vlanMembers("", rec["TAGGEDPORTS"], "")
		if err != nil {
			return nil, err
		}
		for _, port := range access {
			if m, ok := result[port]; ok {
				m.AccessVLAN = id
			}
		}
		for _, port := range tagged {
			if m, ok := result[port]; ok {
				m.TrunkVLANs = append(m.TrunkVLANs, id)
			}
		}
	}

	if err := d.overlayVLLMembership(result); err != nil {
		return nil, err
	}

	// A port tagged into any VLAN is trunking; its untagged VLAN, if
	// one exists, is the trunk's native VLAN.
	for _, m := range result {
		if len(m.TrunkVLANs) > 0 && m.AccessVLAN != -1 {
			m.NativeVLAN = m.AccessVLAN
			m.AccessVLAN = -1
		}
	}
	return result, nil
}

// overlayVLLMembership adds the tagged VLAN of each VLL endpoint to
// its port. Endpoints on ports missing from the interface listing are
// ignored.
func (d *Driver) overlayVLLMembership(result map[string]*InterfaceVLANMembership) error {
	out, err := d.cache.getOrFetch(cmdShowMPLSConfig)
	if err != nil {
		return err
	}
	for _, rec := range extract("show_mpls_config", out) {
		id := util.Atoi(rec["VLAN"], 0)
		if util.ValidateVLANID(id) != nil {
			continue
		}
		for _, raw := range strings.Fields(rec["INTERFACE"]) {
			if raw == "ethe" || raw == "ethernet" || raw == "e" {
				continue
			}
			name, err := d.StandardizeInterfaceName(raw)
			if err != nil {
				return err
			}
			if m, ok := result[name]; ok {
				m.TrunkVLANs = append(m.TrunkVLANs, id)
			}
		}
	}
	return nil
}

// VLANIDs returns the known VLAN ids in ascending order.
func VLANIDs(vlans map[int]*VLAN) []int {
	ids := make([]int, 0, len(vlans))
	for id := range vlans {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func dedupStrings(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
