package errors

import (
	"encoding/json"
	goerrors "errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	grpccodes "google.golang.org/grpc/codes"
)

// Code is the type representing a namespace error code.
type Code[MT any] struct {
	Code     uint16
	Name     string
	GrpcCode grpccodes.Code
}

// New creates a new error with the given code and the message
func (c Code[MT]) New(msg string, args ...any) TypedError[MT] {
	return &ErrorImpl[MT]{
		code:  c,
		cause: fmt.Errorf(msg, args...),
	}
}

// Wrap creates a new Error with the given code and the cause error
func (c Code[MT]) Wrap(cause error) TypedError[MT] {
	return &ErrorImpl[MT]{
		code:  c,
		cause: cause,
	}
}

func (c Code[MT]) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Code)
}

// Is reports whether err carries this code.
func (c Code[MT]) Is(err error) bool {
	var e Error
	if !goerrors.As(err, &e) {
		return false
	}
	return e.Code() == c.Code
}

type Error interface {
	error
	Log() *log.Entry
	Code() uint16
	CodeName() string
	GrpcCode() grpccodes.Code
	Metadata() map[string]string
}

type TypedError[MT any] interface {
	Error
	WithMetadata(MT) TypedError[MT]
}

// ErrorImpl is the default concrete implementation of TypedError.
type ErrorImpl[MT any] struct {
	code     Code[MT]
	cause    error
	metadata MT
}

func (e *ErrorImpl[MT]) Log() *log.Entry {
	return log.WithField("name", e.code.Name).
		WithField("code", e.code.Code).
		WithField("metadata", e.metadata)
}

func (e *ErrorImpl[MT]) Metadata() map[string]string {
	// convert any metadata to map[string]string
	metadata := make(map[string]string)
	buf, err := json.Marshal(e.metadata)
	if err == nil {
		var genericMap map[string]any
		if err := json.Unmarshal(buf, &genericMap); err == nil {
			for k, v := range genericMap {
				vStr := ""
				if v != nil {
					vStr = fmt.Sprintf("%v", v)
				}
				metadata[k] = vStr
			}
		}
	}
	return metadata
}

func (e *ErrorImpl[MT]) GrpcCode() grpccodes.Code {
	return e.code.GrpcCode
}

func (e *ErrorImpl[MT]) Code() uint16 {
	return e.code.Code
}

func (e *ErrorImpl[MT]) CodeName() string {
	return e.code.Name
}

// Error() implements the error interface.
func (e *ErrorImpl[MT]) Error() string {
	return fmt.Sprintf("%s: %s", e.code.String(), e.cause.Error())
}

func (e *ErrorImpl[MT]) Unwrap() error {
	return e.cause
}

func (e *ErrorImpl[MT]) WithMetadata(metadata MT) TypedError[MT] {
	e.metadata = metadata
	return e
}

type AddressMismatchMetadata struct {
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

type OriginMetadata struct {
	TokenId string `json:"token_id"`
	Address string `json:"address,omitempty"`
}

type StaleHeightMetadata struct {
	ClaimedHeight uint64 `json:"claimed_height"`
	CurrentHeight uint64 `json:"current_height"`
	MaxPassHeight uint64 `json:"max_pass_height"`
}

type InvalidMessageMetadata struct {
	Message string `json:"message"`
}

type AssetMismatchMetadata struct {
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

type UnauthorizedSenderMetadata struct {
	Sender    string `json:"sender"`
	Principal string `json:"principal"`
}

type InvalidGatewayMetadata struct {
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

type TokenLiveMetadata struct {
	TokenId string `json:"token_id"`
	Asset   string `json:"asset"`
	Supply  uint64 `json:"supply"`
}

type InvalidMetadataMetadata struct {
	Field  string `json:"field"`
	Length int    `json:"length"`
	Max    int    `json:"max"`
}

var INTERNAL_ERROR = Code[map[string]any]{0, "INTERNAL_ERROR", grpccodes.Internal}

var ADDRESS_MISMATCH = Code[AddressMismatchMetadata]{
	1,
	"ADDRESS_MISMATCH",
	grpccodes.InvalidArgument,
}
var ALREADY_EXISTS = Code[OriginMetadata]{2, "ALREADY_EXISTS", grpccodes.AlreadyExists}
var NOT_FOUND = Code[OriginMetadata]{3, "NOT_FOUND", grpccodes.NotFound}

var INVALID_ORIGIN_RECORD = Code[OriginMetadata]{
	4,
	"INVALID_ORIGIN_RECORD",
	grpccodes.DataLoss,
}
var STALE_HEIGHT = Code[StaleHeightMetadata]{5, "STALE_HEIGHT", grpccodes.FailedPrecondition}

var INVALID_MESSAGE = Code[InvalidMessageMetadata]{
	6,
	"INVALID_MESSAGE",
	grpccodes.InvalidArgument,
}
var ASSET_MISMATCH = Code[AssetMismatchMetadata]{7, "ASSET_MISMATCH", grpccodes.InvalidArgument}

var UNAUTHORIZED_SENDER = Code[UnauthorizedSenderMetadata]{
	8,
	"UNAUTHORIZED_SENDER",
	grpccodes.PermissionDenied,
}
var ALREADY_INITIALIZED = Code[any]{9, "ALREADY_INITIALIZED", grpccodes.AlreadyExists}
var NOT_INITIALIZED = Code[any]{10, "NOT_INITIALIZED", grpccodes.FailedPrecondition}

var INVALID_GATEWAY = Code[InvalidGatewayMetadata]{
	11,
	"INVALID_GATEWAY",
	grpccodes.PermissionDenied,
}

var INVALID_METADATA = Code[InvalidMetadataMetadata]{
	12,
	"INVALID_METADATA",
	grpccodes.InvalidArgument,
}
var UNAUTHENTICATED = Code[any]{13, "UNAUTHENTICATED", grpccodes.Unauthenticated}

var TOKEN_ALREADY_LIVE = Code[TokenLiveMetadata]{
	14,
	"TOKEN_ALREADY_LIVE",
	grpccodes.FailedPrecondition,
}
