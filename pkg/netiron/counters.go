package netiron

import (
	"regexp"
	"strconv"
	"strings"
)

// "show statistics" renders one block per port, two counters per line
// (In on the left, Out on the right). Each pair pattern writes into
// the entry for the most recently seen port header.
var (
	counterPortRe = regexp.MustCompile(`^\s*PORT (\S+) Counters:`)

	counterPairs = []struct {
		re *regexp.Regexp
		rx func(*InterfaceCounters, uint64)
		tx func(*InterfaceCounters, uint64)
	}{
		{
			regexp.MustCompile(`^\s+InOctets\s+(\d+)\s+OutOctets\s+(\d+)`),
			func(c *InterfaceCounters, v uint64) { c.RxOctets = v },
			func(c *InterfaceCounters, v uint64) { c.TxOctets = v },
		},
		{
			regexp.MustCompile(`^\s+InUnicastPkts\s+(\d+)\s+OutUnicastPkts\s+(\d+)`),
			func(c *InterfaceCounters, v uint64) { c.RxUnicastPackets = v },
			func(c *InterfaceCounters, v uint64) { c.TxUnicastPackets = v },
		},
		{
			regexp.MustCompile(`^\s+InBroadcastPkts\s+(\d+)\s+OutBroadcastPkts\s+(\d+)`),
			func(c *InterfaceCounters, v uint64) { c.RxBroadcastPackets = v },
			func(c *InterfaceCounters, v uint64) { c.TxBroadcastPackets = v },
		},
		{
			regexp.MustCompile(`^\s+InMulticastPkts\s+(\d+)\s+OutMulticastPkts\s+(\d+)`),
			func(c *InterfaceCounters, v uint64) { c.RxMulticastPackets = v },
			func(c *InterfaceCounters, v uint64) { c.TxMulticastPackets = v },
		},
		{
			regexp.MustCompile(`^\s+InErrors\s+(\d+)\s+OutErrors\s+(\d+)`),
			func(c *InterfaceCounters, v uint64) { c.RxErrors = v },
			func(c *InterfaceCounters, v uint64) { c.TxErrors = v },
		},
		{
			regexp.MustCompile(`^\s+InDiscards\s+(\d+)\s+OutDiscards\s+(\d+)`),
			func(c *InterfaceCounters, v uint64) { c.RxDiscards = v },
			func(c *InterfaceCounters, v uint64) { c.TxDiscards = v },
		},
	}
)

// GetInterfacesCounters returns per-port traffic counters keyed by
// standardized interface name.
func (d *Driver) GetInterfacesCounters() (map[string]*InterfaceCounters, error) {
	out, err := d.sendDefault("show statistics")
	if err != nil {
		return nil, err
	}

	counters := make(map[string]*InterfaceCounters)
	var current *InterfaceCounters
	for _, line := range strings.Split(out, "\n") {
		if m := counterPortRe.FindStringSubmatch(line); m != nil {
			current = &InterfaceCounters{}
			counters[d.standardizeLoose(m[1])] = current
			continue
		}
		if current == nil {
			continue
		}
		for _, pair := range counterPairs {
			m := pair.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			rx, _ := strconv.ParseUint(m[1], 10, 64)
			tx, _ := strconv.ParseUint(m[2], 10, 64)
			pair.rx(current, rx)
			pair.tx(current, tx)
			break
		}
	}
	return counters, nil
}
