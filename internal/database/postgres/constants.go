package postgres

const LogMsgRollbackFailed = "Failed to rollback transaction"

// advisoryLockMaterialize is the first key of the (class, episode) advisory
// lock pair taken while rewriting an episode's canonical rows
const advisoryLockMaterialize int32 = 7101

// Wrapped error prefixes
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgRowIteration              = "row iteration error"
	ErrMsgAdvisoryLock              = "failed to acquire advisory lock"
)
