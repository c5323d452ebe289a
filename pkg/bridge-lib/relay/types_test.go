package relay_test

import (
	"encoding/hex"
	"testing"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/auth"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/relay"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

func TestInboundCall(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		raw := make([]byte, nft.MESSAGE_SIZE)
		raw[0] = 0x11
		call := relay.InboundCall{
			Gateway:      nft.Address{0: 0x9a},
			Principal:    nft.Address{0: 0xa1},
			AssetAddress: nft.Address{0: 0x11},
			Message:      hex.EncodeToString(raw),
		}

		buf, err := call.Serialize()
		require.NoError(t, err)
		require.Contains(t, string(buf), `"gateway":"9a00`)

		got, err := relay.NewInboundCallFromBytes(buf)
		require.NoError(t, err)
		require.Equal(t, call, *got)

		gotRaw, err := got.RawMessage()
		require.NoError(t, err)
		require.Equal(t, raw, gotRaw)
	})

	t.Run("invalid", func(t *testing.T) {
		fixtures := []struct {
			name string
			buf  string
			err  string
		}{
			{"not json", "nope", "invalid inbound call"},
			{"bad address", `{"gateway":"zz"}`, "invalid inbound call"},
			{"bad message", `{"message":"zz"}`, "invalid message format, must be hex"},
		}
		for _, f := range fixtures {
			t.Run(f.name, func(t *testing.T) {
				_, err := relay.NewInboundCallFromBytes([]byte(f.buf))
				require.ErrorContains(t, err, f.err)
			})
		}
	})
}

func TestInboundCallSignature(t *testing.T) {
	gateway, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	signer := auth.NewSigner(gateway)

	newCall := func(t *testing.T) relay.InboundCall {
		t.Helper()
		call := relay.InboundCall{
			Principal:    nft.Address{0: 0xa1},
			AssetAddress: nft.Address{0: 0x11},
			Message:      hex.EncodeToString(make([]byte, nft.MESSAGE_SIZE)),
		}
		require.NoError(t, call.Sign(signer))
		return call
	}

	t.Run("valid", func(t *testing.T) {
		call := newCall(t)
		require.Equal(t, signer.Principal(), call.Gateway)
		require.NotEmpty(t, call.Signature)

		buf, err := call.Serialize()
		require.NoError(t, err)
		got, err := relay.NewInboundCallFromBytes(buf)
		require.NoError(t, err)
		require.NoError(t, got.Verify())
	})

	t.Run("invalid", func(t *testing.T) {
		other, err := btcec.NewPrivateKey()
		require.NoError(t, err)

		fixtures := []struct {
			name   string
			tamper func(c *relay.InboundCall)
		}{
			{"missing signature", func(c *relay.InboundCall) { c.Signature = "" }},
			{"malformed signature", func(c *relay.InboundCall) { c.Signature = "zz" }},
			{"forged gateway", func(c *relay.InboundCall) { c.Gateway = auth.PrincipalFromPubKey(other.PubKey()) }},
			{"changed principal", func(c *relay.InboundCall) { c.Principal = nft.Address{0: 0xa2} }},
			{"changed message", func(c *relay.InboundCall) { c.Message = "ff" + c.Message[2:] }},
		}
		for _, f := range fixtures {
			t.Run(f.name, func(t *testing.T) {
				call := newCall(t)
				f.tamper(&call)
				require.ErrorIs(t, call.Verify(), auth.ErrInvalidSignature)
			})
		}
	})
}

func TestOutboundCall(t *testing.T) {
	call := relay.OutboundCall{
		Id:       "id",
		Sender:   nft.Address{0: 0xa1},
		Receiver: nft.ForeignAddress{0: 0xbe},
		Amount:   1,
		Message:  "00ff",
	}

	buf, err := call.Serialize()
	require.NoError(t, err)
	require.NotContains(t, string(buf), "revert_options")

	got, err := relay.NewOutboundCallFromBytes(buf)
	require.NoError(t, err)
	require.Equal(t, call, *got)

	_, err = relay.NewOutboundCallFromBytes([]byte(`{"message":"00"}`))
	require.ErrorContains(t, err, "missing id")
}
