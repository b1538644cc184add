package netiron

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/netadapt/netiron/pkg/util"
)

// Chassis default warning and shutdown temperature levels.
const (
	tempAlertC    = 75.0
	tempCriticalC = 90.0
)

var (
	cpuIdleRe = regexp.MustCompile(`^idle\s.*?(\d+)\s*$`)

	chassisPowerRe = regexp.MustCompile(`^Power (\d+)\s*(?:\(([^)]*)\))?\s*:\s*(.+)`)
	chassisFanRe   = regexp.MustCompile(`^Fan (\d+):\s+Status = (\S+?),?\s+Speed = (.+)`)
	chassisTempRe  = regexp.MustCompile(`^(\S+(?:\s+Sensor\d+)?)\s+Temperature\s+([\d.]+)\s+deg-C`)
)

// GetEnvironment aggregates chassis health: management CPU load,
// per-LP CPU load, memory on every module, and the temperature, fan,
// and power sections of "show chassis".
func (d *Driver) GetEnvironment() (*Environment, error) {
	env := &Environment{
		CPUDetail:    make(map[string]int),
		MemoryDetail: make(map[string]MemoryUsage),
		Temperature:  make(map[string]TemperatureSensor),
		Fans:         make(map[string]FanStatus),
		Power:        make(map[string]PowerSupply),
	}

	out, err := d.sendDefault("show cpu-utilization average all 300 | include idle")
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(out, "\n") {
		if m := cpuIdleRe.FindStringSubmatch(line); m != nil {
			env.CPUUsagePct = 100 - util.Atoi(m[1], 100)
		}
	}

	out, err = d.sendDefault("show cpu-utilization lp")
	if err != nil {
		return nil, err
	}
	for _, rec := range extract("show_cpu_lp", out) {
		env.CPUDetail["LP"+rec["SLOT"]] = util.Atoi(rec["UTIL"], 0)
	}

	if err := d.readMemory(env); err != nil {
		return nil, err
	}
	if err := d.readChassis(env); err != nil {
		return nil, err
	}
	return env, nil
}

// readMemory fills per-module memory usage. The active management
// module's numbers double as the chassis-level figure.
func (d *Driver) readMemory(env *Environment) error {
	out, err := d.sendDefault("show memory")
	if err != nil {
		return err
	}
	for _, rec := range extract("show_memory", out) {
		total := util.Atoi(rec["TOTAL"], 0)
		free := util.Atoi(rec["FREE"], 0)
		usage := MemoryUsage{
			Available: total,
			Used:      total - free,
		}
		env.MemoryDetail[rec["MODULE"]] = usage
		if strings.Contains(rec["MODULE"], "MP") && rec["STATE"] == "active" {
			env.Memory = usage
		}
	}
	return nil
}

func (d *Driver) readChassis(env *Environment) error {
	out, err := d.sendDefault("show chassis")
	if err != nil {
		return err
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)

		if m := chassisPowerRe.FindStringSubmatch(line); m != nil {
			env.Power["PSU"+m[1]] = PowerSupply{
				OK:       strings.Contains(m[3], "OK"),
				Capacity: strings.TrimSpace(m[2]),
			}
			continue
		}
		if m := chassisFanRe.FindStringSubmatch(line); m != nil {
			env.Fans["Fan"+m[1]] = FanStatus{
				OK:    m[2] == "OK",
				Speed: strings.TrimSpace(m[3]),
			}
			continue
		}
		if m := chassisTempRe.FindStringSubmatch(line); m != nil {
			celsius, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			name := strings.Join(strings.Fields(m[1]), " ")
			env.Temperature[name] = TemperatureSensor{
				Celsius:    celsius,
				IsAlert:    celsius >= tempAlertC,
				IsCritical: celsius >= tempCriticalC,
			}
		}
	}
	return nil
}

// String renders a one-line health summary.
func (e *Environment) String() string {
	return fmt.Sprintf("cpu %d%% mem %d/%d fans %d psus %d sensors %d",
		e.CPUUsagePct, e.Memory.Used, e.Memory.Available,
		len(e.Fans), len(e.Power), len(e.Temperature))
}
