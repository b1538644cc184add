package netiron

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

var ntpPeerRe = regexp.MustCompile(`^(\W*)([0-9.]+)$`)

// GetNTPStats parses "show ntp associations". The peer marked with a
// leading "*" is the one the clock is synchronized to.
func (d *Driver) GetNTPStats() ([]NTPAssociation, error) {
	out, err := d.sendDefault("show ntp associations")
	if err != nil {
		return nil, err
	}
	if strings.Contains(out, "%NTP is not enabled") {
		return nil, nil
	}

	var stats []NTPAssociation
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "address") || strings.Contains(line, "sys.peer") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 9 {
			continue
		}
		m := ntpPeerRe.FindStringSubmatch(fields[0])
		if m == nil {
			continue
		}
		delay, _ := strconv.ParseFloat(fields[6], 64)
		offset, _ := strconv.ParseFloat(fields[7], 64)
		jitter, _ := strconv.ParseFloat(fields[8], 64)
		stats = append(stats, NTPAssociation{
			Remote:       m[2],
			Synchronized: strings.Contains(m[1], "*"),
			ReferenceID:  fields[1],
			Stratum:      util.Atoi(fields[2], 0),
			When:         fields[3],
			HostPoll:     util.Atoi(fields[4], 0),
			Reachability: util.Atoi(fields[5], 0),
			Delay:        delay,
			Offset:       offset,
			Jitter:       jitter,
		})
	}
	return stats, nil
}

// GetNTPServers returns the configured NTP server addresses.
func (d *Driver) GetNTPServers() ([]string, error) {
	stats, err := d.GetNTPStats()
	if err != nil {
		return nil, err
	}
	servers := make([]string, 0, len(stats))
	for _, s := range stats {
		servers = append(servers, s.Remote)
	}
	return servers, nil
}

// GetUsers returns the local accounts keyed by username. Passwords
// arrive as the device renders them, usually encrypted.
func (d *Driver) GetUsers() (map[string]User, error) {
	out, err := d.sendDefault("show users")
	if err != nil {
		return nil, err
	}

	users := make(map[string]User)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}
		if strings.HasPrefix(fields[0], "Username") || strings.HasPrefix(fields[0], "=") {
			continue
		}
		users[fields[0]] = User{
			Password: fields[1],
			Level:    util.Atoi(fields[3], 0),
		}
	}
	return users, nil
}

// GetSNMPInformation reads the snmp-server lines of the running
// config. Community strings come back encrypted unless the device has
// password-display enabled.
func (d *Driver) GetSNMPInformation() (*SNMPInfo, error) {
	out, err := d.sendDefault("show run | include snmp-server")
	if err != nil {
		return nil, err
	}

	info := &SNMPInfo{
		ChassisID:   "unknown",
		Contact:     "unknown",
		Location:    "unknown",
		Communities: make(map[string]SNMPCommunity),
	}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "snmp-server" {
			continue
		}
		switch fields[1] {
		case "community":
			community := SNMPCommunity{Mode: "N/A", ACL: "N/A"}
			if len(fields) > 3 {
				community.Mode = strings.ToLower(fields[3])
			}
			if len(fields) > 4 {
				community.ACL = fields[4]
			}
			info.Communities[fields[2]] = community
		case "location":
			info.Location = strings.Join(fields[2:], " ")
		case "contact":
			info.Contact = strings.Join(fields[2:], " ")
		case "chassis-id":
			info.ChassisID = strings.Join(fields[2:], " ")
		}
	}
	return info, nil
}
