package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

// FirstNonce is the nonce used for the very first issued token.
const FirstNonce uint64 = 1

var (
	ErrConfigExists   = errors.New("config already exists")
	ErrConfigNotFound = errors.New("config not found")
)

// Config is the singleton holding the trusted parties and the issuance nonce.
// It lives at the address derived from nft.ConfigSeed.
type Config struct {
	Address        nft.Address
	Bump           uint8
	Administrator  nft.Address
	GatewayAddress nft.Address
	NextNonce      uint64
	CreatedAt      time.Time
}

func NewConfig(administrator, gatewayAddress nft.Address) (*Config, error) {
	if administrator.IsZero() {
		return nil, fmt.Errorf("missing administrator")
	}
	if gatewayAddress.IsZero() {
		return nil, fmt.Errorf("missing gateway address")
	}

	addr, bump, err := nft.ConfigAddress()
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}

	return &Config{
		Address:        addr,
		Bump:           bump,
		Administrator:  administrator,
		GatewayAddress: gatewayAddress,
		NextNonce:      FirstNonce,
		CreatedAt:      time.Now(),
	}, nil
}

// Validate makes sure the config is stored where it is supposed to be.
func (c Config) Validate() error {
	addr, err := nft.CreateAddress(c.Bump, nft.ConfigSeed)
	if err != nil {
		return fmt.Errorf("invalid config bump %d: %w", c.Bump, err)
	}
	if addr != c.Address {
		return fmt.Errorf("config address mismatch: got %s, expected %s", c.Address, addr)
	}
	if c.NextNonce < FirstNonce {
		return fmt.Errorf("invalid next nonce %d", c.NextNonce)
	}
	return nil
}
