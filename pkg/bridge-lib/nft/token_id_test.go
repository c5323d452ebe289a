package nft_test

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/stretchr/testify/require"
)

func TestTokenId(t *testing.T) {
	var fixtures tokenIdFixtures
	buf, err := os.ReadFile("testdata/token_id_fixtures.json")
	require.NoError(t, err)
	err = json.Unmarshal(buf, &fixtures)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		for _, v := range fixtures.Valid {
			t.Run(v.Name, func(t *testing.T) {
				asset, err := nft.NewAddressFromString(v.Asset)
				require.NoError(t, err)
				height, err := strconv.ParseUint(v.Height, 10, 64)
				require.NoError(t, err)
				nonce, err := strconv.ParseUint(v.Nonce, 10, 64)
				require.NoError(t, err)

				tokenId := nft.DeriveTokenId(*asset, height, nonce)
				require.Equal(t, v.TokenId, tokenId.String())

				parsed, err := nft.NewTokenIdFromString(v.TokenId)
				require.NoError(t, err)
				require.Equal(t, tokenId, *parsed)

				addr, bump, err := tokenId.OriginAddress()
				require.NoError(t, err)
				require.Equal(t, v.OriginAddress, addr.String())
				require.Equal(t, v.OriginBump, bump)
				require.True(t, tokenId.VerifyOriginAddress(addr, bump))
				require.False(t, tokenId.VerifyOriginAddress(*asset, bump))
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, v := range fixtures.Invalid {
			t.Run(v.Name, func(t *testing.T) {
				got, err := nft.NewTokenIdFromString(v.TokenId)
				require.Error(t, err)
				require.Contains(t, err.Error(), v.ExpectedError)
				require.Nil(t, got)
			})
		}
	})
}

func TestTokenIdUniqueness(t *testing.T) {
	const numOfSamples = 10000

	seen := make(map[nft.TokenId]struct{}, numOfSamples*3)
	add := func(id nft.TokenId) {
		_, ok := seen[id]
		require.False(t, ok, "collision for token id %s", id)
		seen[id] = struct{}{}
	}

	for i := 0; i < numOfSamples; i++ {
		var asset nft.Address
		binary.LittleEndian.PutUint64(asset[:], uint64(i))

		// vary each component of the triple on its own
		add(nft.DeriveTokenId(asset, 100, 1))
		add(nft.DeriveTokenId(nft.Address{31: 0xff}, uint64(i), 1))
		add(nft.DeriveTokenId(nft.Address{31: 0xee}, 100, uint64(i)))
	}
	require.Len(t, seen, numOfSamples*3)
}

func TestTokenIdText(t *testing.T) {
	tokenId := nft.DeriveTokenId(nft.Address{0x11}, 100, 1)

	buf, err := json.Marshal(struct {
		TokenId nft.TokenId `json:"token_id"`
	}{tokenId})
	require.NoError(t, err)
	require.Equal(t, `{"token_id":"`+tokenId.String()+`"}`, string(buf))

	var got struct {
		TokenId nft.TokenId `json:"token_id"`
	}
	require.NoError(t, json.Unmarshal(buf, &got))
	require.Equal(t, tokenId, got.TokenId)

	err = json.Unmarshal([]byte(`{"token_id":"abcd"}`), &got)
	require.ErrorContains(t, err, "invalid token id length")
}

type tokenIdFixtures struct {
	Valid []struct {
		Name          string `json:"name"`
		Asset         string `json:"asset"`
		Height        string `json:"height"`
		Nonce         string `json:"nonce"`
		TokenId       string `json:"tokenId"`
		OriginAddress string `json:"originAddress"`
		OriginBump    uint8  `json:"originBump"`
	} `json:"valid"`
	Invalid []struct {
		Name          string `json:"name"`
		TokenId       string `json:"tokenId"`
		ExpectedError string `json:"expectedError"`
	} `json:"invalid"`
}
