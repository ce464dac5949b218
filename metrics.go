package qsim

import "time"

// Metrics counts what an engine has done since it was created.
type Metrics struct {
	Registers      int64
	Releases       int64
	FailedReleases int64
	Applications   int64
	Measurements   int64
	Zeros          int64
	Ones           int64
	PeakQubits     int
	CreatedAt      time.Time
	LastOperation  time.Time
}

func newMetrics() *Metrics {
	now := time.Now()
	return &Metrics{
		CreatedAt:     now,
		LastOperation: now,
	}
}

func (m *Metrics) recordRegister(qubits int) {
	m.Registers++
	if qubits > m.PeakQubits {
		m.PeakQubits = qubits
	}
	m.touch()
}

func (m *Metrics) recordRelease(ok bool) {
	if ok {
		m.Releases++
	} else {
		m.FailedReleases++
	}
	m.touch()
}

func (m *Metrics) recordApplication() {
	m.Applications++
	m.touch()
}

func (m *Metrics) recordMeasurement(result Result) {
	m.Measurements++
	if result == One {
		m.Ones++
	} else {
		m.Zeros++
	}
	m.touch()
}

func (m *Metrics) touch() {
	m.LastOperation = time.Now()
}

// OneRate is the fraction of measurements that returned One.
func (m Metrics) OneRate() float64 {
	if m.Measurements == 0 {
		return 0
	}
	return float64(m.Ones) / float64(m.Measurements)
}

func (m Metrics) ExportMetrics() map[string]interface{} {
	return map[string]interface{}{
		"registers":       m.Registers,
		"releases":        m.Releases,
		"failed_releases": m.FailedReleases,
		"applications":    m.Applications,
		"measurements":    m.Measurements,
		"zeros":           m.Zeros,
		"ones":            m.Ones,
		"one_rate":        m.OneRate(),
		"peak_qubits":     m.PeakQubits,
		"uptime_ms":       m.LastOperation.Sub(m.CreatedAt).Milliseconds(),
	}
}
