package netiron

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

var (
	factsChassisRe = regexp.MustCompile(`^(?:System|Chassis):\s+(.*)\s+\(Serial #:\s+(\S+),`)
	factsVersionRe = regexp.MustCompile(`^IronWare : Version\s+(\S+)\s+Copyright \(c\)\s+(.*)`)
	factsUptimeRe  = regexp.MustCompile(
		`\s+Active MP.*Uptime\s+(\d+)\s+days\s+(\d+)\s+hours\s+(\d+)\s+minutes\s+(\d+)\s+seconds`)
)

// GetFacts returns the device identity: model and serial from the
// version banner, uptime from the active management module, and the
// interface list including synthesized LAG names.
func (d *Driver) GetFacts() (*Facts, error) {
	facts := &Facts{
		Vendor:        "Brocade",
		OSVersion:     "netiron",
		Hostname:      d.Hostname,
		UptimeSeconds: -1,
	}

	out, err := d.sendDefault("show version")
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(out, "\n") {
		if m := factsChassisRe.FindStringSubmatch(line); m != nil {
			facts.Model = strings.TrimSpace(m[1])
			facts.SerialNumber = m[2]
		}
		if m := factsVersionRe.FindStringSubmatch(line); m != nil {
			facts.OSVersion = m[1]
			facts.Vendor = strings.TrimSpace(m[2])
		}
	}

	out, err = d.sendDefault("show uptime")
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(out, "\n") {
		if m := factsUptimeRe.FindStringSubmatch(line); m != nil {
			days := util.Atoi(m[1], 0)
			hours := util.Atoi(m[2], 0)
			minutes := util.Atoi(m[3], 0)
			seconds := util.Atoi(m[4], 0)
			facts.UptimeSeconds = float64(seconds + minutes*60 + hours*3600 + days*86400)
		}
	}

	out, err = d.cache.getOrFetch(cmdShowInterfaceBrief)
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_interface_brief_wide", out) {
		name, err := d.StandardizeInterfaceName(rec["PORT"])
		if err != nil {
			return nil, err
		}
		facts.Interfaces = append(facts.Interfaces, name)
	}

	lagOut, err := d.cache.getOrFetch(cmdShowLAGConfig)
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_running_config_lag", lagOut) {
		facts.Interfaces = append(facts.Interfaces, fmt.Sprintf("lag%s", rec["ID"]))
	}
	return facts, nil
}
