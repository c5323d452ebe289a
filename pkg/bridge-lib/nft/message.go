package nft

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

// MESSAGE_SIZE is the size of an encoded CrossChainMessage:
// asset(32) | token_id(32) | sender(32) | recipient(20) | dest_chain_id(8) | operation(1).
const MESSAGE_SIZE = ADDRESS_SIZE + TOKEN_ID_SIZE + ADDRESS_SIZE + FOREIGN_ADDRESS_SIZE + 8 + 1

// ErrMalformedMessage is returned when a message does not match the wire layout.
var ErrMalformedMessage = errors.New("malformed message")

// Operation tells the receiving side what to do with a CrossChainMessage.
type Operation uint8

const (
	OperationTransferOut Operation = iota
	OperationReceiveIn
)

func (o Operation) String() string {
	switch o {
	case OperationTransferOut:
		return "transfer_out"
	case OperationReceiveIn:
		return "receive_in"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}

func (o Operation) valid() bool {
	return o == OperationTransferOut || o == OperationReceiveIn
}

// CrossChainMessage is the payload exchanged with the gateway.
type CrossChainMessage struct {
	AssetAddress Address
	TokenId      TokenId
	Sender       Address
	Recipient    ForeignAddress
	DestChainId  uint64
	Operation    Operation
}

// OperationHandler must be implemented by whoever consumes a decoded message.
// Every operation has its own method, so a new operation can't be added
// without all the handlers taking care of it.
type OperationHandler interface {
	OnTransferOut(msg CrossChainMessage) error
	OnReceiveIn(msg CrossChainMessage) error
}

// NewCrossChainMessageFromString decodes a hex-encoded message.
func NewCrossChainMessageFromString(s string) (*CrossChainMessage, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: must be hex", ErrMalformedMessage)
	}
	return NewCrossChainMessageFromBytes(buf)
}

// NewCrossChainMessageFromBytes strictly decodes a message: anything but
// exactly MESSAGE_SIZE bytes with a known operation tag is rejected.
func NewCrossChainMessageFromBytes(buf []byte) (*CrossChainMessage, error) {
	if len(buf) != MESSAGE_SIZE {
		return nil, fmt.Errorf(
			"%w: invalid length, got %d want %d", ErrMalformedMessage, len(buf), MESSAGE_SIZE,
		)
	}
	return newCrossChainMessageFromReader(bytes.NewReader(buf))
}

// Serialize encodes the message into its fixed-size wire format.
func (m CrossChainMessage) Serialize() ([]byte, error) {
	if !m.Operation.valid() {
		return nil, fmt.Errorf("%w: unknown operation %d", ErrMalformedMessage, m.Operation)
	}

	w := bytes.NewBuffer(make([]byte, 0, MESSAGE_SIZE))
	if err := serializeSlice(w, m.AssetAddress[:]); err != nil {
		return nil, err
	}
	if err := serializeSlice(w, m.TokenId[:]); err != nil {
		return nil, err
	}
	if err := serializeSlice(w, m.Sender[:]); err != nil {
		return nil, err
	}
	if err := serializeSlice(w, m.Recipient[:]); err != nil {
		return nil, err
	}
	if err := serializeUint64(w, m.DestChainId); err != nil {
		return nil, err
	}
	if err := w.WriteByte(byte(m.Operation)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String returns the hex encoding of the serialized message.
func (m CrossChainMessage) String() string {
	// nolint
	buf, _ := m.Serialize()
	return hex.EncodeToString(buf)
}

// Dispatch calls the handler method matching the message operation.
func (m CrossChainMessage) Dispatch(h OperationHandler) error {
	switch m.Operation {
	case OperationTransferOut:
		return h.OnTransferOut(m)
	case OperationReceiveIn:
		return h.OnReceiveIn(m)
	default:
		return fmt.Errorf("%w: unknown operation %d", ErrMalformedMessage, m.Operation)
	}
}

func newCrossChainMessageFromReader(r *bytes.Reader) (*CrossChainMessage, error) {
	var msg CrossChainMessage
	if err := deserializeInto(r, msg.AssetAddress[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read asset address", ErrMalformedMessage)
	}
	if err := deserializeInto(r, msg.TokenId[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read token id", ErrMalformedMessage)
	}
	if err := deserializeInto(r, msg.Sender[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read sender", ErrMalformedMessage)
	}
	if err := deserializeInto(r, msg.Recipient[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read recipient", ErrMalformedMessage)
	}
	destChainId, err := deserializeUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read dest chain id", ErrMalformedMessage)
	}
	msg.DestChainId = destChainId

	tag, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read operation", ErrMalformedMessage)
	}
	msg.Operation = Operation(tag)
	if !msg.Operation.valid() {
		return nil, fmt.Errorf("%w: unknown operation %d", ErrMalformedMessage, tag)
	}

	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedMessage, r.Len())
	}
	return &msg, nil
}
