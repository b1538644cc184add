package netiron

import (
	"reflect"
	"testing"
)

func fullFixtureDriver(t *testing.T) *Driver {
	t.Helper()
	d, _ := newTestDriver(t, map[string]string{
		cmdShowInterface:      showInterfaceFixture,
		cmdShowInterfaceBrief: showInterfaceBriefFixture,
		cmdShowMPLSInterface:  showMPLSInterfaceFixture,
		cmdShowVLAN:           showVLANFixture,
		cmdShowMPLSConfig:     showMPLSConfigFixture,
		cmdShowLAGConfig:      showLAGConfigFixture,
	})
	return d
}

func TestGetInterfacesBaseFields(t *testing.T) {
	d := fullFixtureDriver(t)

	interfaces, err := d.GetInterfaces()
	if err != nil {
		t.Fatalf("GetInterfaces: %v", err)
	}

	up, ok := interfaces["GigabitEthernet2/4"]
	if !ok {
		t.Fatal("GigabitEthernet2/4 missing")
	}
	if up.Link != LinkUp {
		t.Errorf("link = %v, want up", up.Link)
	}
	if up.Description != "uplink to core" {
		t.Errorf("description = %q", up.Description)
	}
	if up.MAC != "00:00:00:86:5f:c0" {
		t.Errorf("mac = %q", up.MAC)
	}
	if up.SpeedMbit != 1000 || up.SpeedRaw != "1G" {
		t.Errorf("speed = %d/%q, want 1000/1G", up.SpeedMbit, up.SpeedRaw)
	}
	if up.MTU != 9216 {
		t.Errorf("mtu = %d", up.MTU)
	}
	wantFlap := float64(10*86400 + 2*3600 + 3*60 + 4)
	if up.LastFlapped != wantFlap {
		t.Errorf("last flapped = %v, want %v", up.LastFlapped, wantFlap)
	}

	down := interfaces["GigabitEthernet2/5"]
	if down.Link != LinkDown {
		t.Errorf("2/5 link = %v, want down", down.Link)
	}
	if down.Description != "" {
		t.Errorf("2/5 description = %q, want empty", down.Description)
	}
	if down.SpeedMbit != 0 {
		t.Errorf("2/5 speed = %d, want 0 for auto", down.SpeedMbit)
	}
	if down.LastFlapped != -1.0 {
		t.Errorf("2/5 last flapped = %v, want -1", down.LastFlapped)
	}

	if disabled := interfaces["10GigabitEthernet4/1"]; disabled.Link != LinkDisabled {
		t.Errorf("4/1 link = %v, want disabled", disabled.Link)
	}
	if interfaces["10GigabitEthernet4/1"].SpeedMbit != 10000 {
		t.Errorf("4/1 speed = %d, want 10000", interfaces["10GigabitEthernet4/1"].SpeedMbit)
	}
}

func TestGetInterfacesMPLSOverlay(t *testing.T) {
	d := fullFixtureDriver(t)

	interfaces, err := d.GetInterfaces()
	if err != nil {
		t.Fatalf("GetInterfaces: %v", err)
	}
	if !interfaces["GigabitEthernet2/4"].MPLSEnabled {
		t.Error("2/4 should be MPLS enabled")
	}
	// 2/5 is in the MPLS interface table but runs RSVP only (LDP No);
	// 4/1 and Ve10 are not in the table at all.
	for _, name := range []string{"GigabitEthernet2/5", "10GigabitEthernet4/1", "Ve10"} {
		if interfaces[name].MPLSEnabled {
			t.Errorf("%s should not be MPLS enabled", name)
		}
	}
}

func TestGetInterfacesSynthesizesLAG(t *testing.T) {
	d := fullFixtureDriver(t)

	interfaces, err := d.GetInterfaces()
	if err != nil {
		t.Fatalf("GetInterfaces: %v", err)
	}
	lag, ok := interfaces["lag7"]
	if !ok {
		t.Fatal("lag7 missing")
	}
	wantChildren := []string{"GigabitEthernet2/4", "GigabitEthernet2/5"}
	if !reflect.DeepEqual(lag.Children, wantChildren) {
		t.Errorf("lag children = %v, want %v", lag.Children, wantChildren)
	}
	if lag.Description != "CORE-LAG" {
		t.Errorf("lag description = %q", lag.Description)
	}
	// 2/4 is up, so the aggregate is up even though 2/5 is down.
	if lag.Link != LinkUp {
		t.Errorf("lag link = %v, want up", lag.Link)
	}
	if lag.SpeedMbit != 1000 || lag.MTU != 9216 {
		t.Errorf("lag inherited speed/mtu = %d/%d", lag.SpeedMbit, lag.MTU)
	}
}

func TestGetInterfacesVeChildren(t *testing.T) {
	d := fullFixtureDriver(t)

	interfaces, err := d.GetInterfaces()
	if err != nil {
		t.Fatalf("GetInterfaces: %v", err)
	}
	ve, ok := interfaces["Ve10"]
	if !ok {
		t.Fatal("Ve10 missing")
	}
	want := []string{"GigabitEthernet2/4", "GigabitEthernet2/5", "10GigabitEthernet4/1"}
	if !reflect.DeepEqual(ve.Children, want) {
		t.Errorf("Ve10 children = %v, want %v", ve.Children, want)
	}
}
