package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	grpccodes "google.golang.org/grpc/codes"
)

// generateErrorFixtures creates test fixtures with sample metadata for each error type
func generateErrorFixtures() []Error {
	return []Error{
		INTERNAL_ERROR.New("internal server error occurred").
			WithMetadata(map[string]any{
				"component": "database",
				"operation": "query",
			}),

		ADDRESS_MISMATCH.New("origin address mismatch").
			WithMetadata(AddressMismatchMetadata{
				Expected: "9c5a2f4c1e0b3a6d8e7f1023456789abcdef0123456789abcdef0123456789ab",
				Got:      "0000000000000000000000000000000000000000000000000000000000000001",
			}),

		ALREADY_EXISTS.New("origin record already exists").
			WithMetadata(OriginMetadata{
				TokenId: "2f1e4d3c5b6a79880a1b2c3d4e5f60718293a4b5c6d7e8f90112233445566778",
				Address: "9c5a2f4c1e0b3a6d8e7f1023456789abcdef0123456789abcdef0123456789ab",
			}),

		NOT_FOUND.New("origin record not found").
			WithMetadata(OriginMetadata{
				TokenId: "2f1e4d3c5b6a79880a1b2c3d4e5f60718293a4b5c6d7e8f90112233445566778",
			}),

		INVALID_ORIGIN_RECORD.New("stored token id does not match").
			WithMetadata(OriginMetadata{
				TokenId: "2f1e4d3c5b6a79880a1b2c3d4e5f60718293a4b5c6d7e8f90112233445566778",
			}),

		STALE_HEIGHT.New("claimed height out of window").
			WithMetadata(StaleHeightMetadata{
				ClaimedHeight: 10,
				CurrentHeight: 200,
				MaxPassHeight: 150,
			}),

		INVALID_MESSAGE.New("failed to decode message").
			WithMetadata(InvalidMessageMetadata{Message: "00ff"}),

		ASSET_MISMATCH.New("asset mismatch").
			WithMetadata(AssetMismatchMetadata{Expected: "aa", Got: "bb"}),

		UNAUTHORIZED_SENDER.New("sender is not the principal").
			WithMetadata(UnauthorizedSenderMetadata{Sender: "aa", Principal: "bb"}),

		ALREADY_INITIALIZED.New("config already initialized"),

		NOT_INITIALIZED.New("config not initialized"),

		INVALID_GATEWAY.New("caller is not the gateway").
			WithMetadata(InvalidGatewayMetadata{Expected: "aa", Got: "bb"}),

		INVALID_METADATA.New("name too long").
			WithMetadata(InvalidMetadataMetadata{Field: "name", Length: 40, Max: 32}),

		UNAUTHENTICATED.New("missing signature"),

		TOKEN_ALREADY_LIVE.New("token already live").
			WithMetadata(TokenLiveMetadata{TokenId: "aa", Asset: "bb", Supply: 1}),
	}
}

func TestErrors(t *testing.T) {
	fixtures := generateErrorFixtures()

	for _, err := range fixtures {
		t.Run(err.CodeName(), func(t *testing.T) {
			require.NotEmpty(t, err.Error())
			require.Contains(t, err.Error(), err.CodeName())
			require.Contains(t, err.Error(), fmt.Sprintf("(%d)", err.Code()))
			require.NotEqual(t, grpccodes.OK, err.GrpcCode())
			require.NotNil(t, err.Log())
		})
	}
}

func TestErrorMetadata(t *testing.T) {
	err := STALE_HEIGHT.New("claimed height %d out of window", 10).
		WithMetadata(StaleHeightMetadata{
			ClaimedHeight: 10,
			CurrentHeight: 200,
			MaxPassHeight: 150,
		})

	metadata := err.Metadata()
	require.Equal(t, "10", metadata["claimed_height"])
	require.Equal(t, "200", metadata["current_height"])
	require.Equal(t, "150", metadata["max_pass_height"])
	require.Equal(t, "STALE_HEIGHT (5): claimed height 10 out of window", err.Error())

	require.Empty(t, ALREADY_INITIALIZED.New("twice").Metadata())
}

func TestCodeIs(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NOT_FOUND.Wrap(cause)
	wrapped := fmt.Errorf("failed to get origin: %w", err)

	require.True(t, NOT_FOUND.Is(err))
	require.True(t, NOT_FOUND.Is(wrapped))
	require.False(t, ALREADY_EXISTS.Is(wrapped))
	require.False(t, NOT_FOUND.Is(cause))
	require.False(t, NOT_FOUND.Is(nil))
	require.ErrorIs(t, wrapped, cause)
}
