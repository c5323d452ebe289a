package ports

import "context"

const (
	TokenIssued        Topic = "Token Issued"
	TokenSentOut       Topic = "Token Sent Out"
	InboundCallDropped Topic = "Inbound Call Dropped"
)

type Topic string

type Alerts interface {
	Publish(ctx context.Context, topic Topic, message interface{}) error
}

type TokenIssuedAlert struct {
	TokenId        string
	AssetAddress   string
	Holder         string
	CreationHeight uint64
	Nonce          uint64
	Name           string
	Symbol         string
}

type TokenSentOutAlert struct {
	SubmissionId string
	TokenId      string
	Sender       string
	Recipient    string
	DestChainId  uint64
}

type InboundCallDroppedAlert struct {
	MessageId string
	Attempts  int
	Reason    string
}
