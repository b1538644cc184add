package netiron

import (
	"reflect"
	"testing"
)

func TestGetFacts(t *testing.T) {
	d, _ := newTestDriver(t, map[string]string{
		"show version":        showVersionFixture,
		"show uptime":         showUptimeFixture,
		cmdShowInterface:      showInterfaceFixture,
		cmdShowInterfaceBrief: showInterfaceBriefFixture,
		cmdShowLAGConfig:      showLAGConfigFixture,
	})

	facts, err := d.GetFacts()
	if err != nil {
		t.Fatalf("GetFacts: %v", err)
	}
	if facts.Model != "NetIron 4-slot" {
		t.Errorf("model = %q", facts.Model)
	}
	if facts.SerialNumber != "GOLD1234F00" {
		t.Errorf("serial = %q", facts.SerialNumber)
	}
	if facts.OSVersion != "5.8.0fT163" {
		t.Errorf("os version = %q", facts.OSVersion)
	}
	if facts.Vendor != "Brocade Communications Systems, Inc." {
		t.Errorf("vendor = %q", facts.Vendor)
	}
	if facts.Hostname != "test-device" {
		t.Errorf("hostname = %q", facts.Hostname)
	}

	// Only the active MP's uptime counts, not the standby's.
	want := float64(227*86400 + 3*3600 + 12*60 + 51)
	if facts.UptimeSeconds != want {
		t.Errorf("uptime = %v, want %v", facts.UptimeSeconds, want)
	}

	wantIfaces := []string{
		"GigabitEthernet2/4", "GigabitEthernet2/5", "10GigabitEthernet4/1", "lag7",
	}
	if !reflect.DeepEqual(facts.Interfaces, wantIfaces) {
		t.Errorf("interfaces = %v, want %v", facts.Interfaces, wantIfaces)
	}
}

func TestGetFactsDefaults(t *testing.T) {
	d, _ := newTestDriver(t, map[string]string{
		"show version":        "",
		"show uptime":         "",
		cmdShowInterface:      "",
		cmdShowInterfaceBrief: "",
		cmdShowLAGConfig:      "",
	})

	facts, err := d.GetFacts()
	if err != nil {
		t.Fatalf("GetFacts: %v", err)
	}
	if facts.Vendor != "Brocade" || facts.OSVersion != "netiron" {
		t.Errorf("defaults = %s/%s", facts.Vendor, facts.OSVersion)
	}
	if facts.UptimeSeconds != -1 {
		t.Errorf("uptime = %v, want -1", facts.UptimeSeconds)
	}
	if len(facts.Interfaces) != 0 {
		t.Errorf("interfaces = %v, want none", facts.Interfaces)
	}
}
