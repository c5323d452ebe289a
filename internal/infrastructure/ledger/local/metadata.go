package localledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

type metadataService struct {
	lock     *sync.RWMutex
	metadata map[nft.Address]nft.Metadata
}

func NewMetadataService() ports.MetadataService {
	return &metadataService{
		lock:     &sync.RWMutex{},
		metadata: make(map[nft.Address]nft.Metadata),
	}
}

func (s *metadataService) Attach(
	_ context.Context, asset nft.Address, metadata nft.Metadata,
) error {
	if asset.IsZero() {
		return fmt.Errorf("missing asset")
	}
	if err := metadata.Validate(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.metadata[asset] = metadata
	return nil
}

func (s *metadataService) Get(_ context.Context, asset nft.Address) (*nft.Metadata, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	metadata, ok := s.metadata[asset]
	if !ok {
		return nil, nil
	}
	return &metadata, nil
}

func (s *metadataService) Detach(_ context.Context, asset nft.Address) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.metadata, asset)
	return nil
}
