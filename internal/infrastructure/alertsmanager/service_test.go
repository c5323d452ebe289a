package alertsmanager

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *service {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	alerts, err := NewService(server.URL)
	require.NoError(t, err)
	svc := alerts.(*service)
	svc.baseDelay = time.Millisecond
	return svc
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		var received []Alert
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		})

		err := svc.Publish(ctx, ports.TokenIssued, ports.TokenIssuedAlert{
			TokenId:        "aa",
			AssetAddress:   "bb",
			Holder:         "cc",
			CreationHeight: 100,
			Nonce:          1,
			Name:           "Bridged",
			Symbol:         "BRG",
		})
		require.NoError(t, err)
		require.Len(t, received, 1)
		require.Equal(t, string(ports.TokenIssued), received[0].Labels["alertname"])
		require.Equal(t, serviceName, received[0].Labels["service"])
		require.Equal(t, "aa", received[0].Labels["token_id"])
		require.Contains(t, received[0].Annotations["description"], "Nonce: 1")

		err = svc.Publish(ctx, ports.TokenSentOut, ports.TokenSentOutAlert{
			SubmissionId: "sub",
			TokenId:      "aa",
			DestChainId:  56,
		})
		require.NoError(t, err)
		require.Equal(t, "warning", received[0].Labels["severity"])
		require.Equal(t, "sub", received[0].Labels["submission_id"])

		err = svc.Publish(ctx, ports.InboundCallDropped, ports.InboundCallDroppedAlert{
			MessageId: "msg",
			Attempts:  4,
			Reason:    "db unavailable",
		})
		require.NoError(t, err)
		require.Equal(t, "critical", received[0].Labels["severity"])
		require.Contains(t, received[0].Annotations["description"], "attempts: 4")
	})

	t.Run("retry on server error", func(t *testing.T) {
		var calls atomic.Int32
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		err := svc.Publish(ctx, ports.Topic("custom"), map[string]string{"key": "value"})
		require.NoError(t, err)
		require.Equal(t, int32(3), calls.Load())
	})

	t.Run("invalid", func(t *testing.T) {
		var calls atomic.Int32
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		})

		err := svc.Publish(ctx, ports.TokenIssued, "not an alert")
		require.ErrorContains(t, err, "invalid message type")
		require.Zero(t, calls.Load())

		err = svc.Publish(ctx, ports.TokenIssued, ports.TokenIssuedAlert{TokenId: "aa"})
		require.ErrorContains(t, err, "status 400")
		require.Equal(t, int32(1), calls.Load())

		_, err = NewService("")
		require.Error(t, err)
	})
}
