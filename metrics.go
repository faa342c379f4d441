package slidingwindows

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "slidingwindows"

// StatsSource is anything that can report Stats, such as a Storage.
type StatsSource interface {
	GetStats() Stats
}

// StatsCollector exports the counters of a StatsSource as Prometheus metrics.
// Values are read on every scrape.
type StatsCollector struct {
	src StatsSource

	windows     *prometheus.Desc
	elements    *prometheus.Desc
	wraps       *prometheus.Desc
	violations  *prometheus.Desc
	attachments *prometheus.Desc
}

var _ prometheus.Collector = (*StatsCollector)(nil)

// NewStatsCollector returns a collector for src. constLabels tell apart
// several storages registered on the same registry.
func NewStatsCollector(src StatsSource, constLabels prometheus.Labels) *StatsCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "", name), help, nil, constLabels)
	}
	return &StatsCollector{
		src:         src,
		windows:     desc("windows_total", "Total number of windows issued"),
		elements:    desc("elements_total", "Total number of source elements written to storage"),
		wraps:       desc("wraps_total", "Total number of times the window wrapped back to the lower half"),
		violations:  desc("aliasing_violations_total", "Total number of aliasing violations detected"),
		attachments: desc("attachments_total", "Total number of adaptors attached to the storage"),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.windows
	ch <- c.elements
	ch <- c.wraps
	ch <- c.violations
	ch <- c.attachments
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.GetStats()
	ch <- prometheus.MustNewConstMetric(c.windows, prometheus.CounterValue, float64(st.Windows))
	ch <- prometheus.MustNewConstMetric(c.elements, prometheus.CounterValue, float64(st.Elements))
	ch <- prometheus.MustNewConstMetric(c.wraps, prometheus.CounterValue, float64(st.Wraps))
	ch <- prometheus.MustNewConstMetric(c.violations, prometheus.CounterValue, float64(st.Violations))
	ch <- prometheus.MustNewConstMetric(c.attachments, prometheus.CounterValue, float64(st.Attachments))
}
