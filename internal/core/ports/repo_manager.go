package ports

import (
	"context"

	"github.com/arkade-os/nftbridge/internal/core/domain"
)

type RepoManager interface {
	Config() domain.ConfigRepository
	Origins() domain.OriginRepository
	// RunInTx runs fn inside a single db transaction. Repository calls made with
	// the context given to fn join the transaction, which is committed only if
	// fn returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	Close()
}
