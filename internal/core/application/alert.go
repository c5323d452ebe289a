package application

import (
	"context"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	log "github.com/sirupsen/logrus"
)

const alertTimeout = 5 * time.Second

type ServiceOption func(*service)

// WithAlerts makes the service publish an alert for every issued and every
// sent out token.
func WithAlerts(alerts ports.Alerts) ServiceOption {
	return func(s *service) {
		s.alerts = alerts
	}
}

func (s *service) sendTokenIssuedAlert(record domain.OriginRecord, holder nft.Address) {
	s.publishAlert(ports.TokenIssued, ports.TokenIssuedAlert{
		TokenId:        record.TokenId.String(),
		AssetAddress:   record.AssetAddress.String(),
		Holder:         holder.String(),
		CreationHeight: record.CreationHeight,
		Nonce:          record.Nonce,
		Name:           record.Name,
		Symbol:         record.Symbol,
	})
}

func (s *service) sendTokenSentOutAlert(submissionId string, msg nft.CrossChainMessage) {
	s.publishAlert(ports.TokenSentOut, ports.TokenSentOutAlert{
		SubmissionId: submissionId,
		TokenId:      msg.TokenId.String(),
		Sender:       msg.Sender.String(),
		Recipient:    msg.Recipient.String(),
		DestChainId:  msg.DestChainId,
	})
}

// publishAlert is fire and forget, a failing alert manager never fails an
// operation.
func (s *service) publishAlert(topic ports.Topic, message any) {
	if s.alerts == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
		defer cancel()

		if err := s.alerts.Publish(ctx, topic, message); err != nil {
			log.WithError(err).WithField("topic", topic).Warn("failed to publish alert")
		}
	}()
}
