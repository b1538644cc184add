package netiron

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// The BGP summary table is the only place the device reports prefix
// counters, and its fixed-width rendering has a firmware bug: counters
// wider than their column run together with the neighbors, turning
// "1466 1 191838648268 0" into an unsplittable digit blob. Rows like
// that are detected by the strict pattern failing while the loose one
// matches, and the counters are recovered from the per-peer
// routes-summary output instead.
var (
	bgpRouterIDRe = regexp.MustCompile(
		`^\s+Router ID:\s+(\d+\.\d+\.\d+\.\d+)\s+Local AS Number:\s+(\d+)`)

	// Address AS# State Time Rt:Accepted Filtered Sent ToSend
	bgpSummaryPeerRe = regexp.MustCompile(
		`^\s+(\S+)\s+(\d+)\s+(\S+)\s+(.+)\s\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s*$`)

	// Loose form for overflow rows: the first four columns are intact,
	// the counters are not.
	bgpSummaryOverflowRe = regexp.MustCompile(
		`^\s+(\S+)\s+(\d+)\s+(\S+)\s+(\S+)`)

	bgpRoutesAcceptedRe = regexp.MustCompile(
		`^Routes Accepted/Installed:\s*(\d+),\s+Filtered/Kept:\s*(\d+),\s+Filtered:\s*(\d+)`)
	bgpRoutesAdvertisedRe = regexp.MustCompile(
		`^Routes Advertised:\s*(\d+),\s+To be Sent:\s*(\d+),\s+To be Withdrawn:\s*(\d+)`)
)

func bgpCommand(afi int, suffix string) string {
	v := ""
	if afi == 6 {
		v = "v6"
	}
	return "show ip" + v + " bgp" + suffix
}

// GetBGPNeighbors returns every configured peer across both address
// families, merged from the summary table (counters, state) and the
// neighbor listing (router ID, description, full state name, uptime).
func (d *Driver) GetBGPNeighbors() (*BGPSummary, error) {
	merged := &BGPSummary{Peers: make(map[string]*BGPPeer)}
	for _, afi := range []int{4, 6} {
		out, err := d.sendDefault(bgpCommand(afi, " summary"))
		if err != nil {
			return nil, err
		}
		if err := d.parseBGPSummary(merged, afi, out); err != nil {
			return nil, err
		}

		out, err = d.send(bgpCommand(afi, " neighbors"), d.opts.ShowCommandWait)
		if err != nil {
			return nil, err
		}
		d.overlayBGPNeighborDetail(merged, out)
	}
	return merged, nil
}

// parseBGPSummary folds one address family's summary output into sum.
// Rows hit by the counter overflow bug fall back to per-peer recovery;
// a row that fails even the loose pattern is skipped.
func (d *Driver) parseBGPSummary(sum *BGPSummary, afi int, raw string) error {
	for _, line := range strings.Split(raw, "\n") {
		if m := bgpRouterIDRe.FindStringSubmatch(line); m != nil {
			sum.RouterID = m[1]
			sum.LocalAS = util.Atoi(m[2], 0)
			continue
		}

		if m := bgpSummaryPeerRe.FindStringSubmatch(line); m != nil {
			if v, err := util.IPVersion(m[1]); err != nil || v != afi {
				continue
			}
			remoteAS := util.Atoi(m[2], 0)
			if err := util.ValidateASN(remoteAS); err != nil {
				util.Warnf("bgp summary row for %s skipped: %v", m[1], err)
				continue
			}
			accepted := util.Atoi(m[5], 0)
			filtered := util.Atoi(m[6], 0)
			sum.addPeer(&BGPPeer{
				RemoteAddress: m[1],
				AFI:           afi,
				LocalAS:       sum.LocalAS,
				RemoteAS:      remoteAS,
				State:         m[3],
				Uptime:        strings.TrimSpace(m[4]),
				Counters: &PrefixCounters{
					Received: accepted + filtered,
					Accepted: accepted,
					Filtered: filtered,
					Sent:     util.Atoi(m[7], 0),
					ToSend:   util.Atoi(m[8], 0),
				},
			})
			continue
		}

		if m := bgpSummaryOverflowRe.FindStringSubmatch(line); m != nil {
			if v, err := util.IPVersion(m[1]); err != nil || v != afi {
				continue
			}
			remoteAS := util.Atoi(m[2], 0)
			if err := util.ValidateASN(remoteAS); err != nil {
				util.Warnf("bgp summary row for %s skipped: %v", m[1], err)
				continue
			}
			util.WithDevice(d.Hostname).Infof("bgp summary counter overflow for %s, recovering", m[1])
			counters, err := d.recoverPrefixCounters(m[1], afi)
			if err != nil {
				util.Warnf("prefix counter recovery for %s failed: %v", m[1], err)
				counters = nil
			}
			sum.addPeer(&BGPPeer{
				RemoteAddress: m[1],
				AFI:           afi,
				LocalAS:       sum.LocalAS,
				RemoteAS:      remoteAS,
				State:         m[3],
				Uptime:        m[4],
				Counters:      counters,
			})
		}
	}
	return nil
}

func (s *BGPSummary) addPeer(p *BGPPeer) {
	if _, ok := s.Peers[p.RemoteAddress]; !ok {
		s.Order = append(s.Order, p.RemoteAddress)
	}
	s.Peers[p.RemoteAddress] = p
}

// overlayBGPNeighborDetail enriches summary peers with fields only the
// neighbor listing carries. Peers absent from the summary are ignored;
// the summary is the authority on which peers exist.
func (d *Driver) overlayBGPNeighborDetail(sum *BGPSummary, raw string) {
	for _, rec := range extract("bgp_neighbor_detail", raw) {
		peer, ok := sum.Peers[rec["REMOTE_ADDRESS"]]
		if !ok {
			continue
		}
		peer.RemoteID = rec["ROUTER_ID"]
		peer.Description = rec["DESCRIPTION"]
		if rec["STATE"] != "" {
			peer.State = rec["STATE"]
		}
		if rec["UPTIME"] != "" {
			peer.Uptime = rec["UPTIME"]
		}
	}
}

// recoverPrefixCounters rebuilds one peer's counters from its
// routes-summary output when the summary row is unreadable.
func (d *Driver) recoverPrefixCounters(addr string, afi int) (*PrefixCounters, error) {
	out, err := d.send(bgpCommand(afi, " neighbors "+addr+" routes-summary"), d.opts.ShowCommandWait)
	if err != nil {
		return nil, err
	}

	counters := &PrefixCounters{}
	found := false
	for _, line := range strings.Split(out, "\n") {
		if m := bgpRoutesAcceptedRe.FindStringSubmatch(line); m != nil {
			counters.Accepted = util.Atoi(m[1], 0)
			counters.Filtered = util.Atoi(m[3], 0)
			counters.Received = counters.Accepted + counters.Filtered
			found = true
		}
		if m := bgpRoutesAdvertisedRe.FindStringSubmatch(line); m != nil {
			counters.Sent = util.Atoi(m[1], 0)
			counters.ToSend = util.Atoi(m[2], 0)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("routes-summary for %s: %w", addr, util.ErrLookupFailed)
	}
	return counters, nil
}

// GetBGPNeighborsDetail returns per-peer session detail grouped by
// routing table and remote AS. With a neighbor address it queries only
// that peer's address family; otherwise both families are walked.
// Counters come from the matching summary peer and stay nil when the
// peer never appeared there.
func (d *Driver) GetBGPNeighborsDetail(neighborAddress string) (BGPPeerGroups, error) {
	type afiQuery struct {
		afi      int
		neighbor string
	}
	var queries []afiQuery
	if neighborAddress == "" {
		queries = []afiQuery{{4, ""}, {6, ""}}
	} else {
		v, err := util.IPVersion(neighborAddress)
		if err != nil {
			return nil, err
		}
		queries = []afiQuery{{v, neighborAddress}}
	}

	groups := make(BGPPeerGroups)
	for _, q := range queries {
		sum := &BGPSummary{Peers: make(map[string]*BGPPeer)}
		out, err := d.sendDefault(bgpCommand(q.afi, " summary"))
		if err != nil {
			return nil, err
		}
		if err := d.parseBGPSummary(sum, q.afi, out); err != nil {
			return nil, err
		}

		suffix := " neighbors"
		if q.neighbor != "" {
			suffix += " " + q.neighbor
		}
		out, err = d.send(bgpCommand(q.afi, suffix), d.opts.ShowCommandWait)
		if err != nil {
			return nil, err
		}

		for _, rec := range extract("bgp_neighbor_detail", out) {
			detail := &BGPPeerDetail{
				RemoteAddress: rec["REMOTE_ADDRESS"],
				RemoteAS:      util.Atoi(rec["REMOTE_AS"], 0),
				External:      rec["TYPE"] == "EBGP",
				RouterID:      rec["ROUTER_ID"],
				RoutingTable:  normalizeVRFName(rec["VRF"]),
				Description:   rec["DESCRIPTION"],
				State:         rec["STATE"],
				Uptime:        rec["UPTIME"],
				HoldTime:      util.Atoi(rec["HOLDTIME"], 0),
				KeepaliveTime: util.Atoi(rec["KEEPALIVE"], 0),
				LocalAddress:  rec["LOCAL_ADDRESS"],
				LocalPort:     util.Atoi(rec["LOCAL_PORT"], 0),
				RemotePort:    util.Atoi(rec["REMOTE_PORT"], 0),
				InputUpdates:  util.Atoi(rec["RECV_UPDATES"], 0),
				OutputUpdates: util.Atoi(rec["SENT_UPDATES"], 0),
			}
			if peer, ok := sum.Peers[detail.RemoteAddress]; ok {
				detail.LocalAS = peer.LocalAS
				detail.Counters = peer.Counters
			}

			byAS, ok := groups[detail.RoutingTable]
			if !ok {
				byAS = make(map[int][]*BGPPeerDetail)
				groups[detail.RoutingTable] = byAS
			}
			byAS[detail.RemoteAS] = append(byAS[detail.RemoteAS], detail)
		}
	}
	return groups, nil
}

// normalizeVRFName maps the device's spelling of the default routing
// table to the neutral name callers key on.
func normalizeVRFName(vrf string) string {
	if vrf == "" || vrf == "default-vrf" {
		return "default"
	}
	return vrf
}
