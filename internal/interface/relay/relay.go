package inboundrelay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/arkade-os/nftbridge/internal/core/application"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/relay"
	"github.com/arkade-os/nftbridge/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultMaxRedeliveries = 3
	alertTimeout           = 5 * time.Second
)

// Relay consumes the calls published on the inbound topic and hands them to
// the bridge. Calls rejected by the bridge are acked and dropped, internal
// failures are nacked for redelivery up to maxRedeliveries times.
type Relay struct {
	subscriber      message.Subscriber
	svc             application.Service
	maxRedeliveries int
	alerts          ports.Alerts

	lock     *sync.Mutex
	attempts map[string]int
	cancel   context.CancelFunc
	done     chan struct{}
}

type Option func(*Relay)

// WithAlerts publishes an alert for every call dropped after the max number
// of redeliveries.
func WithAlerts(alerts ports.Alerts) Option {
	return func(r *Relay) {
		r.alerts = alerts
	}
}

func NewRelay(
	subscriber message.Subscriber, svc application.Service, maxRedeliveries int,
	opts ...Option,
) (*Relay, error) {
	if subscriber == nil {
		return nil, fmt.Errorf("missing subscriber")
	}
	if svc == nil {
		return nil, fmt.Errorf("missing app service")
	}
	if maxRedeliveries <= 0 {
		maxRedeliveries = defaultMaxRedeliveries
	}
	r := &Relay{
		subscriber:      subscriber,
		svc:             svc,
		maxRedeliveries: maxRedeliveries,
		lock:            &sync.Mutex{},
		attempts:        make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Relay) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	messages, err := r.subscriber.Subscribe(ctx, relay.InboundTopic)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to %s: %w", relay.InboundTopic, err)
	}

	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		for msg := range messages {
			r.handle(msg)
		}
	}()

	log.Infof("inbound relay listening on %s", relay.InboundTopic)
	return nil
}

func (r *Relay) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	log.Info("inbound relay stopped")
}

func (r *Relay) handle(msg *message.Message) {
	logger := log.WithField("message_id", msg.UUID)

	call, err := relay.NewInboundCallFromBytes(msg.Payload)
	if err != nil {
		logger.WithError(err).Warn("dropping malformed inbound call")
		msg.Ack()
		return
	}
	rawMessage, err := call.RawMessage()
	if err != nil {
		logger.WithError(err).Warn("dropping malformed inbound call")
		msg.Ack()
		return
	}
	// Only the signature binds the call to its gateway, the service then
	// checks that the gateway is the trusted one.
	if err := call.Verify(); err != nil {
		logger.WithError(err).WithField("gateway", call.Gateway.String()).
			Warn("dropping inbound call with invalid gateway signature")
		msg.Ack()
		return
	}

	result, svcErr := r.svc.OnInbound(msg.Context(), application.InboundCall{
		Gateway:      call.Gateway,
		Principal:    call.Principal,
		AssetAddress: call.AssetAddress,
		RawMessage:   rawMessage,
	})
	if svcErr == nil {
		r.forget(msg.UUID)
		logger.WithField("operation", result.Operation).
			Infof("processed inbound call for token %s", result.TokenId)
		msg.Ack()
		return
	}

	if svcErr.Code() != errors.INTERNAL_ERROR.Code {
		r.forget(msg.UUID)
		svcErr.Log().WithField("message_id", msg.UUID).Warn("inbound call rejected")
		msg.Ack()
		return
	}

	if attempt := r.retry(msg.UUID); attempt <= r.maxRedeliveries {
		logger.WithError(svcErr).Warnf(
			"failed to process inbound call, attempt %d/%d", attempt, r.maxRedeliveries,
		)
		msg.Nack()
		return
	}

	r.forget(msg.UUID)
	logger.WithError(svcErr).Error("giving up on inbound call after max redeliveries")
	r.sendDroppedAlert(msg.UUID, svcErr)
	msg.Ack()
}

func (r *Relay) sendDroppedAlert(id string, reason error) {
	if r.alerts == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
	defer cancel()

	if err := r.alerts.Publish(ctx, ports.InboundCallDropped, ports.InboundCallDroppedAlert{
		MessageId: id,
		Attempts:  r.maxRedeliveries + 1,
		Reason:    reason.Error(),
	}); err != nil {
		log.WithError(err).WithField("message_id", id).Warn("failed to publish alert")
	}
}

func (r *Relay) retry(id string) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.attempts[id]++
	return r.attempts[id]
}

func (r *Relay) forget(id string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.attempts, id)
}
