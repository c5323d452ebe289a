package localtip

import (
	"context"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

type service struct {
	tip           ports.TipStore
	blockInterval time.Duration
	startHeight   uint64
	scheduler     *gocron.Scheduler
}

// NewChainTip returns a chain tip that produces a new block every
// blockInterval by advancing the shared tip store.
func NewChainTip(
	tip ports.TipStore, blockInterval time.Duration, startHeight uint64,
) (ports.ChainTip, error) {
	if tip == nil {
		return nil, fmt.Errorf("missing tip store")
	}
	if blockInterval <= 0 {
		return nil, fmt.Errorf("invalid block interval %s", blockInterval)
	}

	return &service{
		tip:           tip,
		blockInterval: blockInterval,
		startHeight:   startHeight,
		scheduler:     gocron.NewScheduler(time.UTC),
	}, nil
}

func (s *service) Start() error {
	ctx := context.Background()

	current, err := s.tip.Get(ctx)
	if err != nil {
		return err
	}
	// Never move the tip backwards, another replica may be ahead.
	if current < s.startHeight {
		if err := s.tip.Set(ctx, s.startHeight); err != nil {
			return err
		}
	}

	if _, err := s.scheduler.Every(s.blockInterval).WaitForSchedule().Do(func() {
		height, err := s.tip.Incr(ctx)
		if err != nil {
			log.WithError(err).Warn("failed to produce block")
			return
		}
		log.Debugf("produced block %d", height)
	}); err != nil {
		return fmt.Errorf("failed to schedule block production: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *service) Stop() {
	s.scheduler.Stop()
}

func (s *service) CurrentHeight(ctx context.Context) (uint64, error) {
	return s.tip.Get(ctx)
}
