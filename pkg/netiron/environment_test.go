package netiron

import "testing"

func environmentFixtureDriver(t *testing.T) *Driver {
	t.Helper()
	d, _ := newTestDriver(t, map[string]string{
		"show cpu-utilization average all 300 | include idle": showCPUAvgFixture,
		"show cpu-utilization lp":                             showCPULPFixture,
		"show memory":                                         showMemoryFixture,
		"show chassis":                                        showChassisFixture,
	})
	return d
}

func TestGetEnvironmentCPU(t *testing.T) {
	d := environmentFixtureDriver(t)

	env, err := d.GetEnvironment()
	if err != nil {
		t.Fatalf("GetEnvironment: %v", err)
	}
	// 96% idle means 4% busy.
	if env.CPUUsagePct != 4 {
		t.Errorf("cpu = %d%%, want 4%%", env.CPUUsagePct)
	}
	if env.CPUDetail["LP1"] != 4 {
		t.Errorf("LP1 cpu = %d, want 4", env.CPUDetail["LP1"])
	}
}

func TestGetEnvironmentMemory(t *testing.T) {
	d := environmentFixtureDriver(t)

	env, err := d.GetEnvironment()
	if err != nil {
		t.Fatalf("GetEnvironment: %v", err)
	}
	if env.Memory.Available != 1073741824 || env.Memory.Used != 536870912 {
		t.Errorf("chassis memory = %+v", env.Memory)
	}
	lp := env.MemoryDetail["LP1"]
	if lp.Available != 268435456 || lp.Used != 134217728 {
		t.Errorf("LP1 memory = %+v", lp)
	}
}

func TestGetEnvironmentChassis(t *testing.T) {
	d := environmentFixtureDriver(t)

	env, err := d.GetEnvironment()
	if err != nil {
		t.Fatalf("GetEnvironment: %v", err)
	}

	psu1 := env.Power["PSU1"]
	if !psu1.OK || psu1.Capacity != "AC - Regular" {
		t.Errorf("PSU1 = %+v", psu1)
	}
	if env.Power["PSU2"].OK {
		t.Error("PSU2 should not be OK")
	}

	if !env.Fans["Fan1"].OK || env.Fans["Fan1"].Speed != "LOW (50%)" {
		t.Errorf("Fan1 = %+v", env.Fans["Fan1"])
	}
	if env.Fans["Fan2"].OK {
		t.Error("Fan2 should not be OK")
	}

	tests := []struct {
		sensor   string
		celsius  float64
		alert    bool
		critical bool
	}{
		{"LP1 Sensor1", 40.25, false, false},
		{"LP1 Sensor2", 81.5, true, false},
		{"MP Sensor1", 92.0, true, true},
	}
	for _, tt := range tests {
		sensor, ok := env.Temperature[tt.sensor]
		if !ok {
			t.Errorf("sensor %s missing", tt.sensor)
			continue
		}
		if sensor.Celsius != tt.celsius || sensor.IsAlert != tt.alert || sensor.IsCritical != tt.critical {
			t.Errorf("sensor %s = %+v", tt.sensor, sensor)
		}
	}
}
