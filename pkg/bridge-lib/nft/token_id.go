package nft

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// TOKEN_ID_SIZE is the size of a token id in bytes.
	TOKEN_ID_SIZE = chainhash.HashSize
)

var (
	// OriginSeed is the tag appended to the token id when deriving the
	// address of its origin record.
	OriginSeed = []byte("nft_origin")
	// ConfigSeed is the only seed used to derive the address of the config.
	ConfigSeed = []byte("config")
)

// TokenId is the chain-independent identifier of a bridged asset.
type TokenId [TOKEN_ID_SIZE]byte

// DeriveTokenId computes sha256(asset || height || nonce) with height and nonce
// encoded as 8-byte little-endian integers.
func DeriveTokenId(asset Address, height, nonce uint64) TokenId {
	w := bytes.NewBuffer(make([]byte, 0, ADDRESS_SIZE+16))
	// nolint
	serializeSlice(w, asset[:])
	// nolint
	serializeUint64(w, height)
	// nolint
	serializeUint64(w, nonce)
	return TokenId(chainhash.HashH(w.Bytes()))
}

// NewTokenIdFromString parses a hex-encoded token id.
func NewTokenIdFromString(s string) (*TokenId, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid token id format, must be hex")
	}
	return NewTokenIdFromBytes(buf)
}

// NewTokenIdFromBytes copies buf into a TokenId.
func NewTokenIdFromBytes(buf []byte) (*TokenId, error) {
	if len(buf) != TOKEN_ID_SIZE {
		return nil, fmt.Errorf(
			"invalid token id length: got %d, want %d", len(buf), TOKEN_ID_SIZE,
		)
	}
	var id TokenId
	copy(id[:], buf)
	return &id, nil
}

// OriginAddress returns the address where the origin record of this token
// must be stored and the bump that produced it.
func (t TokenId) OriginAddress() (Address, uint8, error) {
	return DeriveAddress(t[:], OriginSeed)
}

// VerifyOriginAddress recomputes the origin address with the given bump.
func (t TokenId) VerifyOriginAddress(addr Address, bump uint8) bool {
	got, err := CreateAddress(bump, t[:], OriginSeed)
	if err != nil {
		return false
	}
	return got == addr
}

func (t TokenId) String() string {
	return hex.EncodeToString(t[:])
}

func (t TokenId) IsZero() bool {
	return t == TokenId{}
}

func (t TokenId) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TokenId) UnmarshalText(text []byte) error {
	id, err := NewTokenIdFromString(string(text))
	if err != nil {
		return err
	}
	*t = *id
	return nil
}

// ConfigAddress returns the address of the config singleton and its bump.
func ConfigAddress() (Address, uint8, error) {
	return DeriveAddress(ConfigSeed)
}
