package dbstore

const (
	failedToQuery            = "failed-to-query"
	failedToStartTransaction = "failed-to-start-transaction"
	success                  = "success"
)
