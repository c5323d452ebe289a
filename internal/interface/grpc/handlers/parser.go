package handlers

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/arkade-os/nftbridge/internal/interface/grpc/permissions"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

func parsePrincipal(ctx context.Context) (nft.Address, error) {
	principal, ok := permissions.PrincipalFromContext(ctx)
	if !ok {
		return nft.Address{}, fmt.Errorf("missing authenticated principal")
	}
	return principal, nil
}

func parseAddress(name, s string) (nft.Address, error) {
	if len(s) <= 0 {
		return nft.Address{}, fmt.Errorf("missing %s", name)
	}
	addr, err := nft.NewAddressFromString(s)
	if err != nil {
		return nft.Address{}, fmt.Errorf("invalid %s: %s", name, err)
	}
	return *addr, nil
}

func parseOptionalAddress(name, s string, fallback nft.Address) (nft.Address, error) {
	if len(s) <= 0 {
		return fallback, nil
	}
	return parseAddress(name, s)
}

func parseForeignAddress(name, s string) (nft.ForeignAddress, error) {
	if len(s) <= 0 {
		return nft.ForeignAddress{}, fmt.Errorf("missing %s", name)
	}
	addr, err := nft.NewForeignAddressFromString(s)
	if err != nil {
		return nft.ForeignAddress{}, fmt.Errorf("invalid %s: %s", name, err)
	}
	return *addr, nil
}

func parseTokenId(s string) (nft.TokenId, error) {
	if len(s) <= 0 {
		return nft.TokenId{}, fmt.Errorf("missing token id")
	}
	tokenId, err := nft.NewTokenIdFromString(s)
	if err != nil {
		return nft.TokenId{}, fmt.Errorf("invalid token id: %s", err)
	}
	return *tokenId, nil
}

// parseRawMessage only checks the encoding, the content is validated by the
// bridge so that malformed messages surface as INVALID_MESSAGE.
func parseRawMessage(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid message format, must be hex")
	}
	return buf, nil
}
