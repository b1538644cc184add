package netiron

import (
	"errors"
	"reflect"
	"testing"

	"github.com/netadapt/netiron/pkg/util"
)

const showVRFDetailFixture = `VRF CUST-A, default RD 65000:100, Table ID 1
VRF CUST-B, default RD 65000:200, Table ID 2
`

const showIPInterfaceFixture = `Interface    IP-Address      OK?  Method Status  Protocol VRF
eth          2/4             10.57.243.1     YES  NVRAM  up      up       default-vrf
eth          2/5             10.57.244.1     YES  NVRAM  up      up       CUST-A
ve           10              10.60.0.1       YES  NVRAM  up      up       CUST-C
`

const showRunIfaceFixture = `interface ethernet 2/4
 vrf forwarding CUST-A
 ip address 10.57.243.1/24
 ip address 10.57.243.5/24
 ip access-group EDGE-IN in
interface ve 10
 ip address 10.60.0.1/16
 ipv6 address 2001:db8:60::1/64
`

const showRunStaticFixture = `ip route 0.0.0.0/0 10.57.243.254
ipv6 route ::/0 2001:db8:60::ff
ip route vrf CUST-A 10.99.0.0/16 10.57.244.254
`

func instancesFixtureDriver(t *testing.T) *Driver {
	t.Helper()
	d, _ := newTestDriver(t, map[string]string{
		cmdShowInterface:    showInterfaceFixture,
		"show vrf detail":   showVRFDetailFixture,
		"show ip interface": showIPInterfaceFixture,
	})
	return d
}

func TestGetNetworkInstances(t *testing.T) {
	d := instancesFixtureDriver(t)

	instances, err := d.GetNetworkInstances("")
	if err != nil {
		t.Fatalf("GetNetworkInstances: %v", err)
	}
	// default + CUST-A + CUST-B + CUST-C (seen only on an interface)
	if len(instances) != 4 {
		t.Fatalf("instances = %d, want 4: %v", len(instances), instances)
	}

	def := instances["default"]
	if def.Type != "DEFAULT_INSTANCE" {
		t.Errorf("default type = %q", def.Type)
	}
	if !reflect.DeepEqual(def.Interfaces, []string{"GigabitEthernet2/4"}) {
		t.Errorf("default interfaces = %v", def.Interfaces)
	}

	custA := instances["CUST-A"]
	if custA.Type != "L3VRF" || custA.RouteDistinguisher != "65000:100" {
		t.Errorf("CUST-A = %+v", custA)
	}
	if !reflect.DeepEqual(custA.Interfaces, []string{"GigabitEthernet2/5"}) {
		t.Errorf("CUST-A interfaces = %v", custA.Interfaces)
	}

	// CUST-C never appears in the VRF detail but holds an interface.
	custC := instances["CUST-C"]
	if custC == nil || custC.Type != "L3VRF" {
		t.Fatalf("CUST-C = %+v", custC)
	}
	if !reflect.DeepEqual(custC.Interfaces, []string{"Ve10"}) {
		t.Errorf("CUST-C interfaces = %v", custC.Interfaces)
	}
}

func TestGetNetworkInstancesByName(t *testing.T) {
	d := instancesFixtureDriver(t)

	instances, err := d.GetNetworkInstances("CUST-B")
	if err != nil {
		t.Fatalf("GetNetworkInstances: %v", err)
	}
	if len(instances) != 1 || instances["CUST-B"] == nil {
		t.Fatalf("instances = %v", instances)
	}

	if _, err := d.GetNetworkInstances("NOPE"); !errors.Is(err, util.ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
}

func TestGetInterfacesIP(t *testing.T) {
	d, _ := newTestDriver(t, map[string]string{
		cmdShowInterface:                 showInterfaceFixture,
		"show running-config interface":  showRunIfaceFixture,
	})

	interfaces, err := d.GetInterfacesIP()
	if err != nil {
		t.Fatalf("GetInterfacesIP: %v", err)
	}

	eth := interfaces["GigabitEthernet2/4"]
	if eth == nil {
		t.Fatal("GigabitEthernet2/4 missing")
	}
	wantV4 := map[string]int{"10.57.243.1": 24, "10.57.243.5": 24}
	if !reflect.DeepEqual(eth.IPv4, wantV4) {
		t.Errorf("2/4 ipv4 = %v, want %v", eth.IPv4, wantV4)
	}
	if eth.VRF != "CUST-A" || eth.ACL != "EDGE-IN" {
		t.Errorf("2/4 vrf/acl = %s/%s", eth.VRF, eth.ACL)
	}

	ve := interfaces["Ve10"]
	if ve == nil {
		t.Fatal("Ve10 missing")
	}
	if !reflect.DeepEqual(ve.IPv4, map[string]int{"10.60.0.1": 16}) {
		t.Errorf("ve ipv4 = %v", ve.IPv4)
	}
	if !reflect.DeepEqual(ve.IPv6, map[string]int{"2001:db8:60::1": 64}) {
		t.Errorf("ve ipv6 = %v", ve.IPv6)
	}
	if ve.VRF != "" {
		t.Errorf("ve vrf = %q, want empty", ve.VRF)
	}
}

func TestGetStaticRoutes(t *testing.T) {
	d, _ := newTestDriver(t, map[string]string{
		"show running-config": showRunStaticFixture,
	})

	routes, err := d.GetStaticRoutes()
	if err != nil {
		t.Fatalf("GetStaticRoutes: %v", err)
	}
	want := []StaticRoute{
		{Prefix: "0.0.0.0/0", NextHop: "10.57.243.254"},
		{Prefix: "::/0", NextHop: "2001:db8:60::ff"},
		{Prefix: "10.99.0.0/16", NextHop: "10.57.244.254", VRF: "CUST-A"},
	}
	if !reflect.DeepEqual(routes, want) {
		t.Errorf("routes = %v, want %v", routes, want)
	}
}
