// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

var _ MonitorInterface = (*NoopMonitor)(nil)

// NoopMonitor discards all metrics, for tests and disabled setups.
type NoopMonitor struct{}

func (m *NoopMonitor) GetService() string {
	return "trivia-service"
}

func (m *NoopMonitor) SetResponseTimeMetric(labels map[string]string, value float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(labels map[string]string, value float64) error {
	return nil
}

func NewNoopMonitor() *NoopMonitor {
	return &NoopMonitor{}
}
