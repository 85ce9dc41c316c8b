package ports

import "farmstead/internal/domain/farm"

type ActionMetrics interface {
	RecordSuccess(action farm.TileAction)
	RecordConflict()
	RecordFailure()
}
