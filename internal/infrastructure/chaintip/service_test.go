package chaintip_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	esploratip "github.com/arkade-os/nftbridge/internal/infrastructure/chaintip/esplora"
	localtip "github.com/arkade-os/nftbridge/internal/infrastructure/chaintip/local"
	inmemorylivestore "github.com/arkade-os/nftbridge/internal/infrastructure/live-store/inmemory"
	"github.com/stretchr/testify/require"
)

func TestLocalChainTip(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		tip := inmemorylivestore.NewTipStore()
		svc, err := localtip.NewChainTip(tip, 100*time.Millisecond, 1000)
		require.NoError(t, err)

		require.NoError(t, svc.Start())
		t.Cleanup(svc.Stop)

		height, err := svc.CurrentHeight(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, height, uint64(1000))

		require.Eventually(t, func() bool {
			h, err := svc.CurrentHeight(ctx)
			return err == nil && h > 1001
		}, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("does not rewind the tip", func(t *testing.T) {
		tip := inmemorylivestore.NewTipStore()
		require.NoError(t, tip.Set(ctx, 5000))

		svc, err := localtip.NewChainTip(tip, time.Hour, 1000)
		require.NoError(t, err)
		require.NoError(t, svc.Start())
		t.Cleanup(svc.Stop)

		height, err := svc.CurrentHeight(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(5000), height)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := localtip.NewChainTip(nil, time.Second, 0)
		require.ErrorContains(t, err, "missing tip store")

		_, err = localtip.NewChainTip(inmemorylivestore.NewTipStore(), 0, 0)
		require.ErrorContains(t, err, "invalid block interval")
	})
}

func TestEsploraChainTip(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		var blockHeight uint64 = 99
		var calls atomic.Int32
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/blocks/tip/height" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			calls.Add(1)
			w.WriteHeader(http.StatusOK)
			// nolint:errcheck
			fmt.Fprintf(w, "%d", atomic.AddUint64(&blockHeight, 1))
		}))
		t.Cleanup(mockServer.Close)

		tip := inmemorylivestore.NewTipStore()
		svc, err := esploratip.NewChainTip(
			mockServer.URL, tip, esploratip.WithTickerInterval(time.Hour),
		)
		require.NoError(t, err)

		// Nothing cached yet, the read hits the server.
		height, err := svc.CurrentHeight(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(100), height)

		require.NoError(t, svc.Start())
		t.Cleanup(svc.Stop)

		// Fresh reads are served from the mirrored tip.
		callsBefore := calls.Load()
		height, err = svc.CurrentHeight(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(101), height)
		require.Equal(t, callsBefore, calls.Load())

		stored, err := tip.Get(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(101), stored)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := esploratip.NewChainTip("", inmemorylivestore.NewTipStore())
		require.ErrorContains(t, err, "esplora URL is required")

		_, err = esploratip.NewChainTip("http://localhost", nil)
		require.ErrorContains(t, err, "missing tip store")

		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(mockServer.Close)

		svc, err := esploratip.NewChainTip(mockServer.URL, inmemorylivestore.NewTipStore())
		require.NoError(t, err)

		_, err = svc.CurrentHeight(ctx)
		require.ErrorContains(t, err, "unexpected status code: 500")

		require.Error(t, svc.Start())
	})
}
