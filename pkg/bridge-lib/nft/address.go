package nft

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// ADDRESS_SIZE is the size of a local ledger address in bytes.
	ADDRESS_SIZE = 32
	// FOREIGN_ADDRESS_SIZE is the size of an address on the destination chains.
	FOREIGN_ADDRESS_SIZE = 20
	// MAX_SEED_SIZE is the maximum size of a single derivation seed.
	MAX_SEED_SIZE = 32
	// MAX_SEEDS is the maximum number of seeds accepted by DeriveAddress.
	MAX_SEEDS = 16
)

var (
	derivedAddressTag = []byte("nftbridge/derived-address")

	// ErrNoViableBump is returned when no bump yields an off-curve address.
	ErrNoViableBump = errors.New("unable to find a viable bump")
	// ErrAddressOnCurve is returned when the candidate address is a valid public key.
	ErrAddressOnCurve = errors.New("derived address is on curve")
)

// Address identifies an account, an asset or a program on the local ledger.
type Address [ADDRESS_SIZE]byte

// ForeignAddress identifies an account on a destination chain.
type ForeignAddress [FOREIGN_ADDRESS_SIZE]byte

// NewAddressFromString parses a hex-encoded address.
func NewAddressFromString(s string) (*Address, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid address format, must be hex")
	}
	return NewAddressFromBytes(buf)
}

// NewAddressFromBytes copies buf into an Address.
func NewAddressFromBytes(buf []byte) (*Address, error) {
	if len(buf) != ADDRESS_SIZE {
		return nil, fmt.Errorf("invalid address length: got %d, want %d", len(buf), ADDRESS_SIZE)
	}
	var addr Address
	copy(addr[:], buf)
	return &addr, nil
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := NewAddressFromString(string(text))
	if err != nil {
		return err
	}
	*a = *addr
	return nil
}

// NewForeignAddressFromString parses a hex-encoded foreign address, with or
// without the 0x prefix.
func NewForeignAddressFromString(s string) (*ForeignAddress, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid foreign address format, must be hex")
	}
	if len(buf) != FOREIGN_ADDRESS_SIZE {
		return nil, fmt.Errorf(
			"invalid foreign address length: got %d, want %d", len(buf), FOREIGN_ADDRESS_SIZE,
		)
	}
	var addr ForeignAddress
	copy(addr[:], buf)
	return &addr, nil
}

func (a ForeignAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a ForeignAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *ForeignAddress) UnmarshalText(text []byte) error {
	addr, err := NewForeignAddressFromString(string(text))
	if err != nil {
		return err
	}
	*a = *addr
	return nil
}

// DeriveAddress returns the first off-curve address obtained by hashing the
// given seeds together with a bump, starting from bump 255 and going down.
// The bump is returned alongside so that the address can be recomputed with
// CreateAddress without searching again.
func DeriveAddress(seeds ...[]byte) (Address, uint8, error) {
	if err := validateSeeds(seeds); err != nil {
		return Address{}, 0, err
	}

	for bump := 255; bump >= 0; bump-- {
		addr, err := CreateAddress(uint8(bump), seeds...)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrAddressOnCurve) {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, ErrNoViableBump
}

// CreateAddress computes the address for the given seeds and bump.
// It fails with ErrAddressOnCurve if the result is a valid x-only public key,
// since such an address could be controlled by whoever holds the private key.
func CreateAddress(bump uint8, seeds ...[]byte) (Address, error) {
	if err := validateSeeds(seeds); err != nil {
		return Address{}, err
	}

	msgs := make([][]byte, 0, len(seeds)+1)
	msgs = append(msgs, seeds...)
	msgs = append(msgs, []byte{bump})
	hash := chainhash.TaggedHash(derivedAddressTag, msgs...)

	if _, err := schnorr.ParsePubKey(hash[:]); err == nil {
		return Address{}, ErrAddressOnCurve
	}
	return Address(*hash), nil
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MAX_SEEDS {
		return fmt.Errorf("too many seeds: got %d, max %d", len(seeds), MAX_SEEDS)
	}
	for i, seed := range seeds {
		if len(seed) > MAX_SEED_SIZE {
			return fmt.Errorf("seed %d too long: got %d, max %d", i, len(seed), MAX_SEED_SIZE)
		}
	}
	return nil
}
