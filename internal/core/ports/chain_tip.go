package ports

import "context"

type ChainTip interface {
	Start() error
	Stop()
	CurrentHeight(ctx context.Context) (uint64, error)
}
