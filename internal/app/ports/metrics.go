package ports

import "farmatro/internal/domain/farm"

type ActionMetrics interface {
	RecordSuccess(resultCode farm.ResultCode)
	RecordConflict()
	RecordFailure()
}
