package netiron

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// ErrNoRouteMatch reports a BGP route lookup that matched nothing.
// The device prints a banner instead of an empty table, so absence is
// detected on the raw text before parsing starts.
var ErrNoRouteMatch = errors.New("no bgp routes match")

const noRouteBanner = "None of the BGP4 routes match the display condition"

var (
	// Index Prefix NextHop MED LocPrf Weight Status
	bgpRouteRowRe = regexp.MustCompile(
		`^(\d+)\s+(\S+)\s+(\S+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\S+)`)

	// IPv6 rows split after the next hop; the numeric columns arrive on
	// the following line.
	bgpRouteHeadRe = regexp.MustCompile(`^(\d+)\s+(\S+)\s+(\S+)`)

	bgpASPathRe = regexp.MustCompile(`^\s*AS_PATH:\s+(.*)`)

	// Trailer: "Last update to IP routing table: 0h11m38s, 1 path(s) installed"
	bgpRouteTableRe = regexp.MustCompile(`^\s+Last update.*table:\s+(\S+),\s+(\d+)\s`)
)

// LookupBGPRoutes queries the BGP table for one destination prefix.
// An IPv6 route is rendered over two lines, numeric columns below the
// prefix line; the parser joins them before matching so both families
// flow through the same row pattern. A route only becomes part of the
// result once its AS_PATH line arrives.
func (d *Driver) LookupBGPRoutes(prefix string) (*BGPRouteTable, error) {
	version, err := util.PrefixVersion(prefix)
	if err != nil {
		return nil, err
	}

	out, err := d.sendDefault(bgpCommand(version, " route "+prefix))
	if err != nil {
		return nil, err
	}
	if strings.Contains(out, noRouteBanner) {
		return nil, fmt.Errorf("%s: %w", prefix, ErrNoRouteMatch)
	}

	table := &BGPRouteTable{Prefix: prefix, IPVersion: version}

	var current *BGPRoute // matched row awaiting its AS_PATH line
	var previous string
	joinNext := false
	for _, line := range strings.Split(out, "\n") {
		if joinNext {
			line = previous + " " + line
			joinNext = false
		}
		previous = line

		if m := bgpASPathRe.FindStringSubmatch(line); m != nil && current != nil {
			current.ASPath = strings.Fields(m[1])
			table.Routes = append(table.Routes, *current)
			current = nil
			continue
		}

		if m := bgpRouteRowRe.FindStringSubmatch(line); m != nil {
			current = &BGPRoute{
				Index:     util.Atoi(m[1], 0),
				Prefix:    m[2],
				NextHop:   m[3],
				MED:       util.Atoi(m[4], 0),
				LocalPref: util.Atoi(m[5], 0),
				Weight:    util.Atoi(m[6], 0),
				Status:    m[7],
				Best:      strings.Contains(m[7], "B"),
			}
			continue
		}

		if m := bgpRouteTableRe.FindStringSubmatch(line); m != nil {
			table.LastUpdate = m[1]
			table.PathsInstalled = util.Atoi(m[2], 0)
			continue
		}

		if version == 6 && bgpRouteHeadRe.MatchString(line) {
			joinNext = true
		}
	}
	// Older firmware omits the trailer; fall back to what was parsed.
	if table.LastUpdate == "" {
		table.PathsInstalled = len(table.Routes)
	}
	return table, nil
}

// RouteTo resolves a destination through the routing table. Only the
// BGP protocol is supported; asking for anything else is an input
// error, not an empty result.
func (d *Driver) RouteTo(destination, protocol string) (map[string][]RouteEntry, error) {
	if protocol != "" && !strings.EqualFold(protocol, "bgp") {
		return nil, fmt.Errorf("protocol %q: %w", protocol, util.ErrUnsupported)
	}

	table, err := d.LookupBGPRoutes(destination)
	if err != nil {
		return nil, err
	}

	entries := make([]RouteEntry, 0, len(table.Routes))
	for _, route := range table.Routes {
		external := strings.Contains(route.Status, "E")
		entry := RouteEntry{
			Protocol:        "iBGP",
			NextHop:         route.NextHop,
			CurrentActive:   route.Best,
			SelectedNextHop: route.Best,
			Preference:      200,
			RoutingTable:    "default",
			LocalPreference: route.LocalPref,
			MED:             route.MED,
			Weight:          route.Weight,
			Status:          route.Status,
			ASPath:          route.ASPath,
		}
		if external {
			entry.Protocol = "eBGP"
			entry.Preference = 20
		}
		entries = append(entries, entry)
	}
	return map[string][]RouteEntry{destination: entries}, nil
}
