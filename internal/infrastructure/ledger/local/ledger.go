package localledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	log "github.com/sirupsen/logrus"
)

const tokenAmount = 1

var (
	ErrInvalidAmount       = errors.New("invalid amount, tokens are minted and burned one at a time")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Ledger struct {
	lock     *sync.RWMutex
	balances map[nft.Address]map[nft.Address]uint64
	supply   map[nft.Address]uint64
}

// NewLedger returns an in-process asset ledger holding count-1 tokens.
func NewLedger() *Ledger {
	return &Ledger{
		lock:     &sync.RWMutex{},
		balances: make(map[nft.Address]map[nft.Address]uint64),
		supply:   make(map[nft.Address]uint64),
	}
}

func (l *Ledger) Mint(_ context.Context, asset, holder nft.Address, amount uint64) error {
	if err := validate(asset, holder, amount); err != nil {
		return err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.balances[asset]; !ok {
		l.balances[asset] = make(map[nft.Address]uint64)
	}
	l.balances[asset][holder] += amount
	l.supply[asset] += amount

	log.Debugf("minted %d %s to %s", amount, asset, holder)
	return nil
}

func (l *Ledger) Burn(_ context.Context, asset, holder nft.Address, amount uint64) error {
	if err := validate(asset, holder, amount); err != nil {
		return err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	balance := l.balances[asset][holder]
	if balance < amount {
		return fmt.Errorf(
			"%w: %s holds %d of %s, burning %d", ErrInsufficientBalance, holder, balance, asset, amount,
		)
	}

	if balance == amount {
		delete(l.balances[asset], holder)
	} else {
		l.balances[asset][holder] = balance - amount
	}
	l.supply[asset] -= amount

	log.Debugf("burned %d %s from %s", amount, asset, holder)
	return nil
}

func (l *Ledger) Balance(_ context.Context, asset, holder nft.Address) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.balances[asset][holder], nil
}

func (l *Ledger) Supply(_ context.Context, asset nft.Address) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.supply[asset], nil
}

func validate(asset, holder nft.Address, amount uint64) error {
	if asset.IsZero() {
		return fmt.Errorf("missing asset")
	}
	if holder.IsZero() {
		return fmt.Errorf("missing holder")
	}
	if amount != tokenAmount {
		return ErrInvalidAmount
	}
	return nil
}

var _ ports.AssetLedger = (*Ledger)(nil)
