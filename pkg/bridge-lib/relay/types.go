package relay

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/auth"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

const (
	// OutboundTopic carries the calls submitted by the bridge for delivery
	// to another chain.
	OutboundTopic = "bridge.outbound"
	// InboundTopic carries the calls relayed to the bridge from another
	// chain.
	InboundTopic = "bridge.inbound"
)

type RevertOptions struct {
	RevertAddress nft.Address `json:"revert_address"`
	CallOnRevert  bool        `json:"call_on_revert"`
	RevertMessage string      `json:"revert_message,omitempty"`
}

// OutboundCall is the payload published on OutboundTopic, Message is the hex
// encoded cross-chain message.
type OutboundCall struct {
	Id            string             `json:"id"`
	Sender        nft.Address        `json:"sender"`
	Receiver      nft.ForeignAddress `json:"receiver"`
	Amount        uint64             `json:"amount"`
	Message       string             `json:"message"`
	RevertOptions *RevertOptions     `json:"revert_options,omitempty"`
}

func NewOutboundCallFromBytes(buf []byte) (*OutboundCall, error) {
	var call OutboundCall
	if err := json.Unmarshal(buf, &call); err != nil {
		return nil, fmt.Errorf("invalid outbound call: %w", err)
	}
	if len(call.Id) <= 0 {
		return nil, fmt.Errorf("invalid outbound call: missing id")
	}
	if _, err := call.RawMessage(); err != nil {
		return nil, err
	}
	return &call, nil
}

func (c OutboundCall) Serialize() ([]byte, error) {
	return json.Marshal(c)
}

func (c OutboundCall) RawMessage() ([]byte, error) {
	return decodeMessage(c.Message)
}

// InboundCall is the payload published on InboundTopic by a relayer.
// Gateway identifies the relaying program, Principal the account paying for
// and authorizing the call. Signature is the gateway's hex encoded schnorr
// signature of the call serialized without it.
type InboundCall struct {
	Gateway      nft.Address `json:"gateway"`
	Principal    nft.Address `json:"principal"`
	AssetAddress nft.Address `json:"asset_address"`
	Message      string      `json:"message"`
	Signature    string      `json:"signature,omitempty"`
}

func NewInboundCallFromBytes(buf []byte) (*InboundCall, error) {
	var call InboundCall
	if err := json.Unmarshal(buf, &call); err != nil {
		return nil, fmt.Errorf("invalid inbound call: %w", err)
	}
	if _, err := call.RawMessage(); err != nil {
		return nil, err
	}
	return &call, nil
}

func (c InboundCall) Serialize() ([]byte, error) {
	return json.Marshal(c)
}

func (c InboundCall) RawMessage() ([]byte, error) {
	return decodeMessage(c.Message)
}

// Sign makes the signer the gateway of the call and signs it.
func (c *InboundCall) Sign(signer *auth.Signer) error {
	c.Gateway = signer.Principal()
	c.Signature = ""

	payload, err := c.Serialize()
	if err != nil {
		return err
	}
	sig, err := signer.Sign(InboundTopic, payload)
	if err != nil {
		return fmt.Errorf("failed to sign inbound call: %w", err)
	}
	c.Signature = hex.EncodeToString(sig)
	return nil
}

// Verify checks that the call is signed by its gateway.
func (c InboundCall) Verify() error {
	if len(c.Signature) <= 0 {
		return fmt.Errorf("%w: missing signature", auth.ErrInvalidSignature)
	}
	sig, err := hex.DecodeString(c.Signature)
	if err != nil {
		return fmt.Errorf("%w: must be hex", auth.ErrInvalidSignature)
	}

	unsigned := c
	unsigned.Signature = ""
	payload, err := unsigned.Serialize()
	if err != nil {
		return err
	}
	return auth.VerifyRequest(c.Gateway, InboundTopic, payload, sig)
}

func decodeMessage(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid message format, must be hex")
	}
	return buf, nil
}
