package application

import (
	"context"
	"sync"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/stretchr/testify/mock"
)

// In-memory repo manager that drops every write made inside a failed tx.
type fakeRepoManager struct {
	lock    sync.Mutex
	config  *domain.Config
	origins map[nft.Address]domain.OriginRecord
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{origins: make(map[nft.Address]domain.OriginRecord)}
}

func (m *fakeRepoManager) Config() domain.ConfigRepository  { return &fakeConfigRepo{m} }
func (m *fakeRepoManager) Origins() domain.OriginRepository { return &fakeOriginRepo{m} }
func (m *fakeRepoManager) Close()                           {}

func (m *fakeRepoManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.lock.Lock()
	var config *domain.Config
	if m.config != nil {
		cfg := *m.config
		config = &cfg
	}
	origins := make(map[nft.Address]domain.OriginRecord, len(m.origins))
	for k, v := range m.origins {
		origins[k] = v
	}
	m.lock.Unlock()

	if err := fn(ctx); err != nil {
		m.lock.Lock()
		m.config, m.origins = config, origins
		m.lock.Unlock()
		return err
	}
	return nil
}

type fakeConfigRepo struct {
	m *fakeRepoManager
}

func (r *fakeConfigRepo) Get(_ context.Context) (*domain.Config, error) {
	r.m.lock.Lock()
	defer r.m.lock.Unlock()
	if r.m.config == nil {
		return nil, nil
	}
	cfg := *r.m.config
	return &cfg, nil
}

func (r *fakeConfigRepo) Add(_ context.Context, config domain.Config) error {
	r.m.lock.Lock()
	defer r.m.lock.Unlock()
	if r.m.config != nil {
		return domain.ErrConfigExists
	}
	r.m.config = &config
	return nil
}

func (r *fakeConfigRepo) IncrementNonce(_ context.Context) (uint64, error) {
	r.m.lock.Lock()
	defer r.m.lock.Unlock()
	if r.m.config == nil {
		return 0, domain.ErrConfigNotFound
	}
	nonce := r.m.config.NextNonce
	r.m.config.NextNonce++
	return nonce, nil
}

func (r *fakeConfigRepo) Close() {}

type fakeOriginRepo struct {
	m *fakeRepoManager
}

func (r *fakeOriginRepo) Get(_ context.Context, addr nft.Address) (*domain.OriginRecord, error) {
	r.m.lock.Lock()
	defer r.m.lock.Unlock()
	record, ok := r.m.origins[addr]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *fakeOriginRepo) Add(_ context.Context, record domain.OriginRecord) error {
	r.m.lock.Lock()
	defer r.m.lock.Unlock()
	if _, ok := r.m.origins[record.Address]; ok {
		return domain.ErrOriginExists
	}
	r.m.origins[record.Address] = record
	return nil
}

func (r *fakeOriginRepo) Close() {}

type fakeLiveStore struct {
	locks fakeLocks
}

func (s *fakeLiveStore) Locks() ports.LockStore { return &s.locks }
func (s *fakeLiveStore) Tip() ports.TipStore    { return nil }

type fakeLocks struct {
	sync.Mutex
}

func (l *fakeLocks) Lock(_ context.Context, _ string, _ time.Duration) (func(), error) {
	l.Mutex.Lock()
	return l.Mutex.Unlock, nil
}

type mockChainTip struct {
	mock.Mock
}

func (m *mockChainTip) Start() error { return nil }
func (m *mockChainTip) Stop()        {}

func (m *mockChainTip) CurrentHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Mint(ctx context.Context, asset, holder nft.Address, amount uint64) error {
	return m.Called(ctx, asset, holder, amount).Error(0)
}

func (m *mockLedger) Burn(ctx context.Context, asset, holder nft.Address, amount uint64) error {
	return m.Called(ctx, asset, holder, amount).Error(0)
}

func (m *mockLedger) Balance(ctx context.Context, asset, holder nft.Address) (uint64, error) {
	args := m.Called(ctx, asset, holder)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockLedger) Supply(ctx context.Context, asset nft.Address) (uint64, error) {
	args := m.Called(ctx, asset)
	return args.Get(0).(uint64), args.Error(1)
}

type mockMetadataService struct {
	mock.Mock
}

func (m *mockMetadataService) Attach(
	ctx context.Context, asset nft.Address, metadata nft.Metadata,
) error {
	return m.Called(ctx, asset, metadata).Error(0)
}

func (m *mockMetadataService) Get(ctx context.Context, asset nft.Address) (*nft.Metadata, error) {
	args := m.Called(ctx, asset)
	var res *nft.Metadata
	if md := args.Get(0); md != nil {
		res = md.(*nft.Metadata)
	}
	return res, args.Error(1)
}

func (m *mockMetadataService) Detach(ctx context.Context, asset nft.Address) error {
	return m.Called(ctx, asset).Error(0)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Submit(ctx context.Context, call ports.OutboundCall) (string, error) {
	args := m.Called(ctx, call)
	return args.String(0), args.Error(1)
}

type publishedAlert struct {
	topic   ports.Topic
	message any
}

type fakeAlerts struct {
	published chan publishedAlert
	err       error
}

func newFakeAlerts(err error) *fakeAlerts {
	return &fakeAlerts{published: make(chan publishedAlert, 10), err: err}
}

func (a *fakeAlerts) Publish(_ context.Context, topic ports.Topic, message any) error {
	a.published <- publishedAlert{topic, message}
	return a.err
}
