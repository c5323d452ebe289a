package watermillgateway

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/relay"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type gateway struct {
	publisher message.Publisher
	topic     string
}

// NewGateway returns a gateway that publishes every submitted call on the
// outbound topic for relayers to pick up.
func NewGateway(publisher message.Publisher) (ports.Gateway, error) {
	if publisher == nil {
		return nil, fmt.Errorf("missing publisher")
	}
	return &gateway{publisher: publisher, topic: relay.OutboundTopic}, nil
}

func (g *gateway) Submit(ctx context.Context, call ports.OutboundCall) (string, error) {
	if len(call.Message) <= 0 {
		return "", fmt.Errorf("missing message")
	}

	id := uuid.NewString()
	payload, err := toOutboundCall(id, call).Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to serialize outbound call: %w", err)
	}

	msg := message.NewMessage(id, payload)
	msg.SetContext(ctx)

	if err := g.publisher.Publish(g.topic, msg); err != nil {
		return "", fmt.Errorf("failed to publish outbound call: %w", err)
	}

	log.WithField("submission_id", id).Debugf("published outbound call on %s", g.topic)
	return id, nil
}

func toOutboundCall(id string, call ports.OutboundCall) relay.OutboundCall {
	var revertOpts *relay.RevertOptions
	if call.RevertOptions != nil {
		revertOpts = &relay.RevertOptions{
			RevertAddress: call.RevertOptions.RevertAddress,
			CallOnRevert:  call.RevertOptions.CallOnRevert,
			RevertMessage: hex.EncodeToString(call.RevertOptions.RevertMessage),
		}
	}
	return relay.OutboundCall{
		Id:            id,
		Sender:        call.Sender,
		Receiver:      call.Receiver,
		Amount:        call.Amount,
		Message:       hex.EncodeToString(call.Message),
		RevertOptions: revertOpts,
	}
}
