package netiron

import (
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// GetNetworkInstances returns the configured VRFs plus the always
// present default instance, each with the interfaces bound to it.
// With a name, only that instance is returned; an unknown name is a
// lookup error.
func (d *Driver) GetNetworkInstances(name string) (map[string]*NetworkInstance, error) {
	instances := map[string]*NetworkInstance{
		"default": {Name: "default", Type: "DEFAULT_INSTANCE"},
	}

	out, err := d.sendDefault("show vrf detail")
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_vrf_detail", out) {
		instances[rec["NAME"]] = &NetworkInstance{
			Name:               rec["NAME"],
			Type:               "L3VRF",
			RouteDistinguisher: rec["RD"],
		}
	}

	out, err = d.sendDefault("show ip interface")
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_ip_interface", out) {
		intf, err := d.StandardizeInterfaceName(rec["TYPE"] + rec["NUM"])
		if err != nil {
			return nil, err
		}
		vrf := normalizeVRFName(rec["VRF"])
		instance, ok := instances[vrf]
		if !ok {
			// interface bound to a VRF the detail listing missed
			instance = &NetworkInstance{Name: vrf, Type: "L3VRF"}
			instances[vrf] = instance
		}
		instance.Interfaces = append(instance.Interfaces, intf)
	}

	if name == "" {
		return instances, nil
	}
	instance, ok := instances[name]
	if !ok {
		return nil, util.NewLookupError("network instance", name)
	}
	return map[string]*NetworkInstance{name: instance}, nil
}

// GetInterfacesIP returns each interface's configured addresses from
// the running config, keyed by standardized name.
func (d *Driver) GetInterfacesIP() (map[string]*InterfaceAddresses, error) {
	out, err := d.send("show running-config interface", d.opts.ShowCommandWait)
	if err != nil {
		return nil, err
	}

	interfaces := make(map[string]*InterfaceAddresses)
	for _, rec := range extract("show_running_config_interface", out) {
		name, err := d.StandardizeInterfaceName(rec["INTERFACE"] + rec["IFNUM"])
		if err != nil {
			return nil, err
		}
		addrs, ok := interfaces[name]
		if !ok {
			addrs = &InterfaceAddresses{
				IPv4: make(map[string]int),
				IPv6: make(map[string]int),
			}
			interfaces[name] = addrs
		}
		addCIDRs(addrs.IPv4, rec["IPV4"])
		addCIDRs(addrs.IPv6, rec["IPV6"])
		if rec["VRF"] != "" {
			addrs.VRF = rec["VRF"]
		}
		if rec["ACL"] != "" {
			addrs.ACL = rec["ACL"]
		}
	}
	return interfaces, nil
}

func addCIDRs(into map[string]int, list string) {
	for _, cidr := range strings.Fields(list) {
		addr, length, ok := strings.Cut(cidr, "/")
		if !ok {
			continue
		}
		into[addr] = util.Atoi(length, 0)
	}
}

// GetStaticRoutes returns the static routes from the running config,
// default table first, then per-VRF routes.
func (d *Driver) GetStaticRoutes() ([]StaticRoute, error) {
	out, err := d.send("show running-config", d.opts.ShowCommandWait)
	if err != nil {
		return nil, err
	}

	var routes []StaticRoute
	for _, rec := range extract("static_route", out) {
		routes = append(routes, StaticRoute{
			Prefix:  rec["PREFIX"],
			NextHop: rec["NEXTHOP"],
		})
	}
	for _, rec := range extract("vrf_static_route", out) {
		routes = append(routes, StaticRoute{
			Prefix:  rec["PREFIX"],
			NextHop: rec["NEXTHOP"],
			VRF:     rec["VRF"],
		})
	}
	return routes, nil
}
