package esploratip

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

const tipHeightEndpoint = "/blocks/tip/height"

type Option func(*service)

func WithTickerInterval(interval time.Duration) Option {
	return func(s *service) {
		s.tickerInterval = interval
	}
}

func WithHttpClient(client *http.Client) Option {
	return func(s *service) {
		s.client = client
	}
}

type service struct {
	tipURL         string
	client         *http.Client
	tip            ports.TipStore
	lock           *sync.RWMutex
	lastFetch      time.Time
	stopCh         chan struct{}
	tickerInterval time.Duration
}

// NewChainTip returns a chain tip that polls the esplora tip height and
// mirrors it into the given store. A cached height older than two ticks is
// refreshed on read.
func NewChainTip(
	esploraURL string, tip ports.TipStore, opts ...Option,
) (ports.ChainTip, error) {
	if len(esploraURL) == 0 {
		return nil, fmt.Errorf("esplora URL is required")
	}
	if tip == nil {
		return nil, fmt.Errorf("missing tip store")
	}

	tipURL, err := url.JoinPath(esploraURL, tipHeightEndpoint)
	if err != nil {
		return nil, err
	}

	svc := &service{
		tipURL:         tipURL,
		client:         &http.Client{Timeout: 10 * time.Second},
		tip:            tip,
		lock:           &sync.RWMutex{},
		stopCh:         make(chan struct{}),
		tickerInterval: time.Second * 10,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

func (s *service) Start() error {
	if _, err := s.refresh(context.Background()); err != nil {
		return fmt.Errorf("failed to fetch initial tip height: %w", err)
	}

	go func() {
		ticker := time.NewTicker(s.tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				if _, err := s.refresh(context.Background()); err != nil {
					log.WithError(err).Warn("failed to refresh tip height")
				}
			}
		}
	}()
	return nil
}

func (s *service) Stop() {
	close(s.stopCh)
}

func (s *service) CurrentHeight(ctx context.Context) (uint64, error) {
	s.lock.RLock()
	fresh := !s.lastFetch.IsZero() && time.Since(s.lastFetch) < 2*s.tickerInterval
	s.lock.RUnlock()

	if fresh {
		return s.tip.Get(ctx)
	}
	return s.refresh(ctx)
}

func (s *service) refresh(ctx context.Context) (uint64, error) {
	height, err := s.fetchTipHeight(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.tip.Set(ctx, height); err != nil {
		return 0, err
	}

	s.lock.Lock()
	s.lastFetch = time.Now()
	s.lock.Unlock()

	return height, nil
}

func (s *service) fetchTipHeight(ctx context.Context) (uint64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.tipURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}

	// nolint:all
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var tip uint64
	if _, err := fmt.Fscanf(resp.Body, "%d", &tip); err != nil {
		return 0, err
	}

	log.Debugf("fetching tip height from %s, got %d", s.tipURL, tip)

	return tip, nil
}
