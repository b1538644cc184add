package netiron

import (
	"regexp"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

var macRowRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(Static|\d+)\s+(\d+)`)

// GetMACAddressTable returns the learned MAC table. The column layout
// differs by family: CER appends an ESI column that MLX lacks, so the
// expected field count follows the session's family.
func (d *Driver) GetMACAddressTable() ([]MACEntry, error) {
	out, err := d.sendDefault("show mac-address")
	if err != nil {
		return nil, err
	}

	want := 4
	if d.opts.Family == FamilyCER {
		want = 5
	}

	var table []MACEntry
	for _, line := range strings.Split(out, "\n") {
		if !macRowRe.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != want {
			continue
		}
		mac, err := util.CanonicalMAC(fields[0])
		if err != nil {
			continue
		}
		table = append(table, MACEntry{
			MAC:       mac,
			Interface: d.standardizeLoose(fields[1]),
			VLAN:      util.Atoi(fields[3], -1),
			Static:    fields[2] == "Static",
		})
	}
	return table, nil
}
