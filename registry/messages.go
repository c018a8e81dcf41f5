package registry

const (
	starting = "starting"
	finished = "finished"
	success  = "success"

	failedToLoadWorld  = "failed-to-load-world"
	failedToSaveWorld  = "failed-to-save-world"
	failedToSaveTracks = "failed-to-save-tracks"
	failedToSyncUser   = "failed-to-sync-user"
)
