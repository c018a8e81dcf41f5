package cmd

const (
	component = "ranks"

	starting = "starting"
	finished = "finished"

	failedToLoadConfig        = "failed-to-load-config"
	failedToOpenSQLConnection = "failed-to-open-sql-connection"
)
