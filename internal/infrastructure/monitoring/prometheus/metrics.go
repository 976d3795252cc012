package prometheus

// AppMetrics holds all application metrics.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Design pipeline
	DesignRunsTotal    CounterVec
	DesignRunDuration  HistogramVec
	DesignMeshVertices HistogramVec
	DesignMeshFaces    HistogramVec

	// Watch mode
	WatchEventsTotal CounterVec

	// Telemetry ingestion
	ThrustLogsParsedTotal CounterVec
	ThrustLogSamples      HistogramVec
}

var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultRunDurationBuckets  = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}
	DefaultMeshSizeBuckets     = []float64{1000, 5000, 10000, 50000, 100000, 500000, 1000000}
	DefaultSampleCountBuckets  = []float64{10, 50, 100, 500, 1000, 5000, 10000}
)

// NewAppMetrics registers all metrics and returns the AppMetrics struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method")

	m.DesignRunsTotal = collector.RegisterCounter("design_runs_total", "Design pipeline runs", "status")
	m.DesignRunDuration = collector.RegisterHistogram("design_run_duration_seconds", "Design pipeline run duration", DefaultRunDurationBuckets, "status")
	m.DesignMeshVertices = collector.RegisterHistogram("design_mesh_vertices", "Vertices in exported meshes", DefaultMeshSizeBuckets)
	m.DesignMeshFaces = collector.RegisterHistogram("design_mesh_faces", "Faces in exported meshes", DefaultMeshSizeBuckets)

	m.WatchEventsTotal = collector.RegisterCounter("watch_events_total", "Watch mode file events", "result")

	m.ThrustLogsParsedTotal = collector.RegisterCounter("thrust_logs_parsed_total", "Thrust logs parsed", "status")
	m.ThrustLogSamples = collector.RegisterHistogram("thrust_log_samples", "Samples per parsed thrust log", DefaultSampleCountBuckets)

	return m
}
