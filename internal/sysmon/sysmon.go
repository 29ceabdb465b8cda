// Package sysmon collects the CPU, memory, and temperature readings shown in
// the footer. Readings that the platform cannot provide are reported as
// absent rather than as errors; the readout degrades to "N/A".
package sysmon

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/jot-sh/jot/internal/logger"
)

// Stats holds one snapshot of system readings.
type Stats struct {
	CPUUsage float64  // percent, 0-100
	RAMUsage float64  // percent, 0-100
	CPUTemp  *float64 // Celsius, nil when no sensor is available
}

// String renders the footer readout, e.g. "CPU: 12.3% | RAM: 48.1% | Temp: 54°C".
func (s Stats) String() string {
	temp := "N/A"
	if s.CPUTemp != nil {
		temp = fmt.Sprintf("%.0f°C", *s.CPUTemp)
	}
	return fmt.Sprintf("CPU: %.1f%% | RAM: %.1f%% | Temp: %s", s.CPUUsage, s.RAMUsage, temp)
}

// Collect takes a snapshot of the current system readings. Individual
// failures are logged and leave the corresponding field at its zero value.
func Collect(ctx context.Context) Stats {
	var stats Stats

	// Interval 0 compares against the previous call, so repeated ticks get
	// a usage figure without blocking.
	if percents, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		logger.Debug("Sysmon: cpu sample failed: %v", err)
	} else if len(percents) > 0 {
		stats.CPUUsage = percents[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		logger.Debug("Sysmon: memory sample failed: %v", err)
	} else {
		stats.RAMUsage = vm.UsedPercent
	}

	if temps, err := sensors.TemperaturesWithContext(ctx); err != nil {
		logger.Debug("Sysmon: temperature sample failed: %v", err)
	} else {
		stats.CPUTemp = cpuTemperature(temps)
	}

	return stats
}

// cpuSensorKeys are substrings identifying CPU temperature sensors across
// platforms (coretemp on Intel Linux, k10temp on AMD, SMC keys on macOS).
var cpuSensorKeys = []string{"coretemp", "k10temp", "cpu", "tctl", "tdie", "soc"}

// cpuTemperature averages the plausible CPU sensor readings, or returns nil
// when none are available.
func cpuTemperature(temps []sensors.TemperatureStat) *float64 {
	var sum float64
	var count int
	for _, t := range temps {
		key := strings.ToLower(t.SensorKey)
		for _, want := range cpuSensorKeys {
			if strings.Contains(key, want) {
				// Valid CPU temps: 20-110°C
				if t.Temperature >= 20 && t.Temperature < 110 {
					sum += t.Temperature
					count++
				}
				break
			}
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}
