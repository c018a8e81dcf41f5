package yamlstore

const (
	success = "success"

	failedToReadFile  = "failed-to-read-file"
	failedToWriteFile = "failed-to-write-file"
)
