package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitAlert(t *testing.T, alerts *fakeAlerts) publishedAlert {
	t.Helper()
	select {
	case alert := <-alerts.published:
		return alert
	case <-time.After(2 * time.Second):
		t.Fatal("alert not published")
		return publishedAlert{}
	}
}

func TestAlerts(t *testing.T) {
	// A failing alert manager must not fail the operation.
	for _, publishErr := range []error{nil, fmt.Errorf("alert manager unavailable")} {
		alerts := newFakeAlerts(publishErr)
		deps := &testDeps{
			repo:     newFakeRepoManager(),
			tip:      &mockChainTip{},
			ledger:   &mockLedger{},
			metadata: &mockMetadataService{},
			gateway:  &mockGateway{},
		}
		svc, err := NewService(
			deps.repo, &fakeLiveStore{}, deps.tip, deps.ledger, deps.metadata, deps.gateway, 0,
			WithAlerts(alerts),
		)
		require.NoError(t, err)
		_, initErr := svc.Initialize(ctx, administrator, gatewayAddress)
		require.Nil(t, initErr)

		deps.expectIssue(100)
		record, issueErr := svc.Issue(ctx, issueRequest(100))
		require.Nil(t, issueErr)

		alert := waitAlert(t, alerts)
		require.Equal(t, ports.TokenIssued, alert.topic)
		issued, ok := alert.message.(ports.TokenIssuedAlert)
		require.True(t, ok)
		require.Equal(t, record.TokenId.String(), issued.TokenId)
		require.Equal(t, requester.String(), issued.Holder)
		require.Equal(t, record.Nonce, issued.Nonce)

		deps.gateway.On("Submit", mock.Anything, mock.Anything).Return("submission-1", nil)
		_, sendErr := svc.SendOut(ctx, SendOutRequest{
			Caller:      requester,
			TokenId:     record.TokenId,
			DestChainId: 7001,
			Recipient:   recipient,
		})
		require.Nil(t, sendErr)

		alert = waitAlert(t, alerts)
		require.Equal(t, ports.TokenSentOut, alert.topic)
		sentOut, ok := alert.message.(ports.TokenSentOutAlert)
		require.True(t, ok)
		require.Equal(t, "submission-1", sentOut.SubmissionId)
		require.Equal(t, uint64(7001), sentOut.DestChainId)
		require.Equal(t, recipient.String(), sentOut.Recipient)
	}
}
