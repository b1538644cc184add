package netiron

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/netadapt/netiron/pkg/util"
)

// ErrNoReply reports a ping destination that never answered.
var ErrNoReply = errors.New("no reply from remote host")

// The device enforces a 50 ms floor on the per-probe ping timeout.
const minPingTimeoutMS = 50

// ProbeOptions tune ping and traceroute runs. Zero values take the
// defaults noted per field.
type ProbeOptions struct {
	Source  string
	VRF     string
	TTL     int // max hops, default 255
	Timeout int // ping: ms per probe, min 50; traceroute: seconds per hop, default 2
	Size    int // ping payload bytes, default 100
	Count   int // ping probe count, default 5
}

func (o *ProbeOptions) fillPingDefaults() {
	if o.TTL == 0 {
		o.TTL = 255
	}
	if o.Timeout < minPingTimeoutMS {
		o.Timeout = minPingTimeoutMS
	}
	if o.Size == 0 {
		o.Size = 100
	}
	if o.Count == 0 {
		o.Count = 5
	}
}

var (
	pingSentRecvRe  = regexp.MustCompile(`\((\d+)/(\d+)\)`)
	pingMinAvgMaxRe = regexp.MustCompile(`min/avg/max=(\d+)/(\d+)/(\d+)`)
	pingReplyRe     = regexp.MustCompile(`^Reply from .* time[=<](\d+)`)

	tracerouteHopRe = regexp.MustCompile(`(?m)^\s+\d{1,3}\s+.*`)
	bracketRe       = regexp.MustCompile(`[\[\]]`)
)

// Ping sends echo probes and summarizes the replies. The min/avg/max
// figures come from the device's own summary line; per-probe RTTs are
// collected from the individual reply lines.
func (d *Driver) Ping(destination string, opts *ProbeOptions) (*PingResult, error) {
	var o ProbeOptions
	if opts != nil {
		o = *opts
	}
	o.fillPingDefaults()

	version, err := util.IPVersion(destination)
	if err != nil {
		return nil, err
	}

	command := pingCommand(destination, version, &o)
	out, err := d.send(command, d.opts.ShowCommandWait)
	if err != nil {
		return nil, err
	}
	if strings.Contains(out, "No reply from remote host") {
		return nil, fmt.Errorf("%s: %w", destination, ErrNoReply)
	}

	result := &PingResult{}
	var replies []float64
	for _, line := range strings.Split(out, "\n") {
		if m := pingReplyRe.FindStringSubmatch(line); m != nil {
			rtt, _ := strconv.ParseFloat(m[1], 64)
			replies = append(replies, rtt)
			continue
		}
		if !strings.Contains(line, "Success rate is") {
			continue
		}
		if m := pingSentRecvRe.FindStringSubmatch(line); m != nil {
			sent := util.Atoi(m[1], 0)
			received := util.Atoi(m[2], 0)
			result.ProbesSent = sent
			result.PacketLoss = sent - received
		}
		if m := pingMinAvgMaxRe.FindStringSubmatch(line); m != nil {
			result.RTTMin, _ = strconv.ParseFloat(m[1], 64)
			result.RTTAvg, _ = strconv.ParseFloat(m[2], 64)
			result.RTTMax, _ = strconv.ParseFloat(m[3], 64)
		}
	}

	received := result.ProbesSent - result.PacketLoss
	for i := 0; i < received; i++ {
		probe := PingProbe{IPAddress: destination}
		if i < len(replies) {
			probe.RTT = replies[i]
		}
		result.Probes = append(result.Probes, probe)
	}
	return result, nil
}

// pingCommand assembles the device syntax: the VRF clause must follow
// the verb immediately, and IPv6 destinations need an explicit family
// keyword. IPv6 does not support a probe source address.
func pingCommand(destination string, version int, o *ProbeOptions) string {
	var b strings.Builder
	b.WriteString("ping")
	if o.VRF != "" {
		b.WriteString(" vrf " + o.VRF)
	}
	if version == 6 {
		b.WriteString(" ipv6")
	}
	fmt.Fprintf(&b, " %s timeout %d size %d count %d", destination, o.Timeout, o.Size, o.Count)
	if o.Source != "" && version == 4 {
		b.WriteString(" source-ip " + o.Source)
	}
	return b.String()
}

// Traceroute maps the path to a destination. The destination is
// pinged first: a dead target fails in one round trip instead of a
// full TTL sweep of per-hop timeouts. The command wait budget scales
// with hops times per-hop timeout, since a lossy path legitimately
// takes that long.
func (d *Driver) Traceroute(destination string, opts *ProbeOptions) (*TracerouteResult, error) {
	var o ProbeOptions
	if opts != nil {
		o = *opts
	}
	if o.TTL == 0 {
		o.TTL = 30
	}
	if o.Timeout == 0 {
		o.Timeout = 2
	}

	version, err := util.IPVersion(destination)
	if err != nil {
		return nil, err
	}

	if _, err := d.Ping(destination, &ProbeOptions{Source: o.Source, VRF: o.VRF}); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("traceroute")
	if o.VRF != "" {
		b.WriteString(" vrf " + o.VRF)
	}
	if version == 6 {
		b.WriteString(" ipv6")
	}
	b.WriteString(" " + destination)
	if o.Source != "" && version == 4 {
		b.WriteString(" source-ip " + o.Source)
	}
	fmt.Fprintf(&b, " maxttl %d timeout %d", o.TTL, o.Timeout)

	wait := time.Duration(o.TTL*o.Timeout)*time.Second + 30*time.Second
	if wait < d.opts.ShowCommandWait {
		wait = d.opts.ShowCommandWait
	}
	out, err := d.send(b.String(), wait)
	if err != nil {
		return nil, err
	}
	if strings.Contains(out, "Unrecognized host or address") {
		return nil, util.NewLookupError("host", destination)
	}

	result := &TracerouteResult{Hops: make(map[int]TracerouteHop)}
	for _, raw := range tracerouteHopRe.FindAllString(out, -1) {
		fields := strings.Fields(raw)
		if len(fields) < 8 {
			continue
		}
		hopNum := util.Atoi(fields[0], 0)
		hop := TracerouteHop{HostName: "?", RTTs: [3]string{"*", "*", "*"}}
		if fields[1] != "*" {
			// <n> <rtt> ms <rtt> ms <rtt> ms <host> [<ip>]
			hop.RTTs = [3]string{fields[1], fields[3], fields[5]}
			hop.HostName = fields[7]
			if len(fields) == 9 {
				hop.IPAddress = bracketRe.ReplaceAllString(fields[8], "")
			}
		}
		result.Hops[hopNum] = hop
	}
	return result, nil
}
