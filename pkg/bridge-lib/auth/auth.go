// Package auth signs and verifies the requests made to the bridge on behalf of
// a principal. A principal is identified by its x-only secp256k1 public key.
package auth

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	PrincipalHeader = "x-bridge-principal"
	SignatureHeader = "x-bridge-signature"
)

var (
	requestTag = []byte("nftbridge/request")

	ErrInvalidSignature = errors.New("invalid signature")
)

// RequestDigest is the message signed by the principal for the given rpc
// method and serialized request body.
func RequestDigest(method string, body []byte) *chainhash.Hash {
	return chainhash.TaggedHash(requestTag, []byte(method), body)
}

// PrincipalFromPubKey returns the address of the principal owning the key.
func PrincipalFromPubKey(pubkey *btcec.PublicKey) nft.Address {
	var addr nft.Address
	copy(addr[:], schnorr.SerializePubKey(pubkey))
	return addr
}

// VerifyRequest checks that sig is a valid signature of the request made by
// principal.
func VerifyRequest(principal nft.Address, method string, body, sig []byte) error {
	pubkey, err := schnorr.ParsePubKey(principal[:])
	if err != nil {
		return fmt.Errorf("invalid principal: %s", err)
	}
	signature, err := schnorr.ParseSignature(sig)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	digest := RequestDigest(method, body)
	if !signature.Verify(digest[:], pubkey) {
		return ErrInvalidSignature
	}
	return nil
}

// Signer signs requests with the private key of a principal.
type Signer struct {
	key *btcec.PrivateKey
}

func NewSigner(key *btcec.PrivateKey) *Signer {
	return &Signer{key}
}

// NewSignerFromString parses a hex-encoded 32-byte private key.
func NewSignerFromString(s string) (*Signer, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid private key format, must be hex")
	}
	if len(buf) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf(
			"invalid private key length: got %d, want %d", len(buf), btcec.PrivKeyBytesLen,
		)
	}
	key, _ := btcec.PrivKeyFromBytes(buf)
	return NewSigner(key), nil
}

func (s *Signer) Principal() nft.Address {
	return PrincipalFromPubKey(s.key.PubKey())
}

// Sign returns the serialized schnorr signature of the request.
func (s *Signer) Sign(method string, body []byte) ([]byte, error) {
	digest := RequestDigest(method, body)
	sig, err := schnorr.Sign(s.key, digest[:])
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}
