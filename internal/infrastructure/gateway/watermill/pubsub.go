package watermillgateway

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	log "github.com/sirupsen/logrus"
)

// NewGoChannelPubSub returns an in-process pub/sub shared by the gateway and
// the inbound relay.
func NewGoChannelPubSub(outputBuffer int64) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            outputBuffer,
			BlockPublishUntilSubscriberAck: false,
		},
		NewLogger(log.StandardLogger()),
	)
}

type logger struct {
	entry *log.Entry
}

// NewLogger adapts a logrus logger to watermill.
func NewLogger(l *log.Logger) watermill.LoggerAdapter {
	return &logger{entry: log.NewEntry(l)}
}

func (l *logger) Error(msg string, err error, fields watermill.LogFields) {
	l.entry.WithFields(log.Fields(fields)).WithError(err).Error(msg)
}

func (l *logger) Info(msg string, fields watermill.LogFields) {
	l.entry.WithFields(log.Fields(fields)).Info(msg)
}

func (l *logger) Debug(msg string, fields watermill.LogFields) {
	l.entry.WithFields(log.Fields(fields)).Debug(msg)
}

func (l *logger) Trace(msg string, fields watermill.LogFields) {
	l.entry.WithFields(log.Fields(fields)).Trace(msg)
}

func (l *logger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &logger{entry: l.entry.WithFields(log.Fields(fields))}
}
