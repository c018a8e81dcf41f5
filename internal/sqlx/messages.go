package sqlx

const (
	starting  = "starting"
	finished  = "finished"
	committed = "committed"

	failedToStartTransaction = "failed-to-start-transaction"
	failedToRollback         = "failed-to-rollback"
	failedToCommit           = "failed-to-commit"

	failedToCreateTable        = "failed-to-create-table"
	failedToApplyMigration     = "failed-to-apply-migration"
	failedToQueryMigrations    = "failed-to-query-migrations"
	retrievedAppliedMigrations = "retrieved-applied-migrations"
	skippedAppliedMigration    = "skipped-applied-migration"
)
