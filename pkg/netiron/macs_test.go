package netiron

import "testing"

const showMACFixtureMLX = `MAC-Address     Port    Age     VLAN
0000.0086.5fc0  2/4     0       100
0000.0086.5fc1  2/5     Static  200
0000.0086.5fc2  4/1     0       300     -
`

const showMACFixtureCER = `MAC-Address     Port    Age     VLAN    ESI
0000.0086.5fc0  2/4     0       100     -
0000.0086.5fc1  2/5     Static  200     -
`

func TestGetMACAddressTableMLX(t *testing.T) {
	d, _ := newTestDriver(t, map[string]string{
		cmdShowInterface:   showInterfaceFixture,
		"show mac-address": showMACFixtureMLX,
	})

	table, err := d.GetMACAddressTable()
	if err != nil {
		t.Fatalf("GetMACAddressTable: %v", err)
	}
	// The five-field row does not belong to this family's layout.
	if len(table) != 2 {
		t.Fatalf("entries = %d, want 2", len(table))
	}

	dynamic := table[0]
	if dynamic.MAC != "00:00:00:86:5f:c0" || dynamic.Static {
		t.Errorf("entry 0 = %+v", dynamic)
	}
	if dynamic.Interface != "GigabitEthernet2/4" || dynamic.VLAN != 100 {
		t.Errorf("entry 0 = %+v", dynamic)
	}

	static := table[1]
	if !static.Static || static.VLAN != 200 {
		t.Errorf("entry 1 = %+v", static)
	}
}

func TestGetMACAddressTableCER(t *testing.T) {
	ch := &fakeChannel{
		outputs: map[string]string{
			cmdShowInterface:   showInterfaceFixture,
			"show mac-address": showMACFixtureCER,
		},
		calls: make(map[string]int),
	}
	d := New("test-device", "admin", "secret", &Options{Family: FamilyCER})
	d.OpenWith(ch)

	table, err := d.GetMACAddressTable()
	if err != nil {
		t.Fatalf("GetMACAddressTable: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("entries = %d, want 2", len(table))
	}
	if table[0].VLAN != 100 || table[1].VLAN != 200 {
		t.Errorf("vlans = %d/%d", table[0].VLAN, table[1].VLAN)
	}
}
