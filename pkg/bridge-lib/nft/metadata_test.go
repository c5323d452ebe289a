package nft_test

import (
	"strings"
	"testing"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/stretchr/testify/require"
)

func TestMetadataValidate(t *testing.T) {
	collection := nft.Address{1}

	tests := []struct {
		name          string
		metadata      nft.Metadata
		expectedError string
	}{
		{
			name:     "valid",
			metadata: nft.NewMetadata("Bridged Punk", "BPUNK", "https://example.com/1.json"),
		},
		{
			name: "limits",
			metadata: nft.NewMetadata(
				strings.Repeat("n", nft.MAX_NAME_LENGTH),
				strings.Repeat("s", nft.MAX_SYMBOL_LENGTH),
				strings.Repeat("u", nft.MAX_URI_LENGTH),
			),
		},
		{
			name:          "name too long",
			metadata:      nft.NewMetadata(strings.Repeat("n", nft.MAX_NAME_LENGTH+1), "S", "u"),
			expectedError: "name too long: got 33 bytes, max 32",
		},
		{
			name:          "symbol too long",
			metadata:      nft.NewMetadata("n", strings.Repeat("s", nft.MAX_SYMBOL_LENGTH+1), "u"),
			expectedError: "symbol too long: got 11 bytes, max 10",
		},
		{
			name:          "uri too long",
			metadata:      nft.NewMetadata("n", "s", strings.Repeat("u", nft.MAX_URI_LENGTH+1)),
			expectedError: "uri too long: got 201 bytes, max 200",
		},
		{
			name:          "invalid utf8",
			metadata:      nft.NewMetadata("\xff", "s", "u"),
			expectedError: "name must be valid utf8",
		},
		{
			name: "seller fee",
			metadata: nft.Metadata{
				Name: "n", Symbol: "s", Uri: "u", SellerFeeBasisPoints: 500,
			},
			expectedError: "seller fee must be 0",
		},
		{
			name: "creators",
			metadata: nft.Metadata{
				Name: "n", Symbol: "s", Uri: "u", Creators: []nft.Address{{1}},
			},
			expectedError: "creators are not supported",
		},
		{
			name: "collection",
			metadata: nft.Metadata{
				Name: "n", Symbol: "s", Uri: "u", Collection: &collection,
			},
			expectedError: "collection is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metadata.Validate()
			if tt.expectedError == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.expectedError)
		})
	}

	err := nft.NewMetadata(strings.Repeat("n", 40), "s", "u").Validate()
	var fieldErr *nft.FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "name", fieldErr.Field)
	require.Equal(t, 40, fieldErr.Length)
	require.Equal(t, nft.MAX_NAME_LENGTH, fieldErr.Max)
}
