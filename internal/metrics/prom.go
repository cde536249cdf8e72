package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Token dispatch results.
const (
	ResultClaimed      = "claimed"
	ResultUnrecognized = "unrecognized"
)

var (
	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "plugargs_build_info",
			Help: "Build information",
		},
		[]string{"date", "sha", "version"},
	)

	tokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plugargs_tokens_total",
			Help: "Argument tokens offered to plugins by dispatch result",
		},
		[]string{"namespace", "result"},
	)

	declaredOptions = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "plugargs_options",
			Help: "Options declared per plugin namespace",
		},
		[]string{"namespace"},
	)

	docFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plugargs_doc_files_written_total",
			Help: "Documentation files written by locale",
		},
		[]string{"locale"},
	)
)

// Register registers all collectors with r.
func Register(r prometheus.Registerer) {
	r.MustRegister(buildInfo, tokens, declaredOptions, docFiles)
}

// SetBuildInfo sets the build info metric.
func SetBuildInfo(version, sha, date string) {
	buildInfo.WithLabelValues(date, sha, version).Set(1)
}

// RecordToken counts one dispatched token for namespace.
func RecordToken(namespace, result string) {
	tokens.WithLabelValues(namespace, result).Inc()
}

// SetDeclaredOptions records how many options a plugin declares.
func SetDeclaredOptions(namespace string, n int) {
	declaredOptions.WithLabelValues(namespace).Set(float64(n))
}

// RecordDocFile counts a written documentation file.
func RecordDocFile(locale string) {
	docFiles.WithLabelValues(locale).Inc()
}

// WriteTextfile writes everything registered with g to path in the text
// exposition format read by the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
