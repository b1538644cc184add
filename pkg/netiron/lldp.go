package netiron

import "strings"

// GetLLDPNeighbors returns remote systems keyed by standardized local
// port. The remote port ID wins over the port description when both
// are advertised; some vendors only fill one of the two.
func (d *Driver) GetLLDPNeighbors() (map[string][]LLDPNeighbor, error) {
	out, err := d.sendDefault("show lldp neighbors detail")
	if err != nil {
		return nil, err
	}

	neighbors := make(map[string][]LLDPNeighbor)
	for _, rec := range extract("show_lldp_neighbors_detail", out) {
		port := rec["PORT_ID"]
		if port == "" {
			port = rec["PORT_DESCRIPTION"]
		}
		local, err := d.StandardizeInterfaceName(rec["PORT"])
		if err != nil {
			return nil, err
		}
		neighbors[local] = append(neighbors[local], LLDPNeighbor{
			Hostname: strings.ReplaceAll(rec["SYSTEM_NAME"], `"`, ""),
			Port:     strings.ReplaceAll(port, `"`, ""),
		})
	}
	return neighbors, nil
}
