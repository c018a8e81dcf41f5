package sweeper

const (
	starting     = "starting"
	finished     = "finished"
	stillRunning = "still-running"

	sweepsMetric   = "sweeper.sweeps"
	affectedMetric = "sweeper.affected-users"
	expiredMetric  = "sweeper.expired-grants"

	alwaysSend = 1.0
)
