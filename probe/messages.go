package probe

const (
	failed  = "failed"
	success = "success"

	durationMetric = "probe.duration"
	failuresMetric = "probe.failures"

	alwaysSend = 1.0
)
