package netiron

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// The device spells the same interface several ways depending on the
// command: "lb1" in ARP output, "loopback 1" in config, "Loopback1" in
// the interface table, bare "2/4" in VLAN listings. Everything below
// folds those spellings into one canonical form so entities from
// different commands key into the same maps.

var aliasRewrites = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^lb(\d+)$`), "Loopback$1"},
	{regexp.MustCompile(`^loopback\s*(\d+)$`), "Loopback$1"},
	{regexp.MustCompile(`^gre-tnl(\d+)$`), "Tunnel$1"},
	{regexp.MustCompile(`^tn(\d+)$`), "Tunnel$1"},
	{regexp.MustCompile(`^tunnel\s*(\d+)$`), "Tunnel$1"},
	{regexp.MustCompile(`^ve\s*(\d+)$`), "Ve$1"},
	{regexp.MustCompile(`^(?:mgmt|management)1$`), "Ethernetmgmt1"},
}

// slotPortRe picks the "slot/port" suffix out of any Ethernet
// spelling, full or bare.
var slotPortRe = regexp.MustCompile(`\d+/\d+`)

// interfaceMap returns the session's slot/port -> full interface name
// table, building it on first use from the interface listing. Only
// Ethernet data ports carry a slot/port number; management ports are
// excluded so "mgmt1" never aliases a data port.
func (d *Driver) interfaceMap() (map[string]string, error) {
	if d.ifMap != nil {
		return d.ifMap, nil
	}
	out, err := d.cache.getOrFetch(cmdShowInterface)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string)
	for _, rec := range extract("show_interface", out) {
		port := rec["PORT"]
		lower := strings.ToLower(port)
		if !strings.Contains(lower, "ethernet") || strings.Contains(lower, "mgmt") {
			continue
		}
		if sp := slotPortRe.FindString(port); sp != "" {
			m[sp] = port
		}
	}
	d.ifMap = m
	return m, nil
}

// StandardizeInterfaceName folds any device spelling of an interface
// into its canonical name. Bare or prefixed slot/port forms resolve
// through the session interface map; an unknown slot/port is a lookup
// error, which usually means the caller is holding output from a
// different device. Canonical names pass through unchanged, so the
// function is idempotent.
func (d *Driver) StandardizeInterfaceName(name string) (string, error) {
	port := strings.TrimSpace(name)
	for _, rw := range aliasRewrites {
		if rw.re.MatchString(port) {
			return rw.re.ReplaceAllString(port, rw.repl), nil
		}
	}
	if sp := slotPortRe.FindString(port); sp != "" {
		table, err := d.interfaceMap()
		if err != nil {
			return "", err
		}
		full, ok := table[sp]
		if !ok {
			return "", util.NewLookupError("interface map", sp)
		}
		return full, nil
	}
	return port, nil
}

// expandPortList turns a device port enumeration such as
//
//	"ethe 2/1 ethe 2/4 to 2/6 ethe 4/1"
//
// into standardized names, in the order listed. Ranges never cross a
// slot boundary on this platform; a range written across slots is
// malformed input.
func (d *Driver) expandPortList(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "None" {
		return nil, nil
	}

	sep := "e"
	switch {
	case strings.Contains(text, "ethernet"):
		sep = "ethernet"
	case strings.Contains(text, "ethe"):
		sep = "ethe"
	}

	var ports []string
	for _, section := range strings.Split(text, sep) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		if strings.Contains(section, " to ") {
			expanded, err := d.expandRange(section)
			if err != nil {
				return nil, err
			}
			ports = append(ports, expanded...)
			continue
		}
		std, err := d.StandardizeInterfaceName(section)
		if err != nil {
			return nil, err
		}
		ports = append(ports, std)
	}
	return ports, nil
}

// expandRange expands one "2/4 to 2/6" section inclusively.
func (d *Driver) expandRange(section string) ([]string, error) {
	bounds := strings.SplitN(section, " to ", 2)
	startSlot, startPort, err := splitSlotPort(bounds[0])
	if err != nil {
		return nil, err
	}
	endSlot, endPort, err := splitSlotPort(bounds[1])
	if err != nil {
		return nil, err
	}
	if startSlot != endSlot {
		return nil, fmt.Errorf("port range %q crosses slots: %w", section, util.ErrInvalidInput)
	}
	if endPort < startPort {
		return nil, fmt.Errorf("port range %q is inverted: %w", section, util.ErrInvalidInput)
	}

	var ports []string
	for p := startPort; p <= endPort; p++ {
		std, err := d.StandardizeInterfaceName(fmt.Sprintf("%d/%d", startSlot, p))
		if err != nil {
			return nil, err
		}
		ports = append(ports, std)
	}
	return ports, nil
}

func splitSlotPort(s string) (slot, port int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("port %q: %w", s, util.ErrInvalidInput)
	}
	slot, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("port %q: %w", s, util.ErrInvalidInput)
	}
	port, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("port %q: %w", s, util.ErrInvalidInput)
	}
	return slot, port, nil
}

// vlanMembers flattens a VLAN record's tagged ports, untagged ports,
// and virtual interface into one standardized member list.
func (d *Driver) vlanMembers(ve, tagged, untagged string) ([]string, error) {
	var members []string
	if ve != "" && ve != "NONE" {
		members = append(members, "Ve"+ve)
	}
	for _, list := range []string{tagged, untagged} {
		expanded, err := d.expandPortList(list)
		if err != nil {
			return nil, err
		}
		members = append(members, expanded...)
	}
	return members, nil
}
