package nft

import (
	"fmt"
	"unicode/utf8"
)

const (
	MAX_NAME_LENGTH   = 32
	MAX_SYMBOL_LENGTH = 10
	MAX_URI_LENGTH    = 200
)

// Metadata is the human readable description attached to an asset.
// Bridged assets never carry royalties, creators or a collection.
type Metadata struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             []Address
	Collection           *Address
}

// NewMetadata returns the metadata for a bridged asset with the given fields.
func NewMetadata(name, symbol, uri string) Metadata {
	return Metadata{Name: name, Symbol: symbol, Uri: uri}
}

// FieldError reports which metadata field exceeds its limit.
type FieldError struct {
	Field  string
	Length int
	Max    int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s too long: got %d bytes, max %d", e.Field, e.Length, e.Max)
}

// Validate checks the length limits and the absence of royalties,
// creators and collection.
func (m Metadata) Validate() error {
	if err := checkField("name", m.Name, MAX_NAME_LENGTH); err != nil {
		return err
	}
	if err := checkField("symbol", m.Symbol, MAX_SYMBOL_LENGTH); err != nil {
		return err
	}
	if err := checkField("uri", m.Uri, MAX_URI_LENGTH); err != nil {
		return err
	}
	if m.SellerFeeBasisPoints != 0 {
		return fmt.Errorf("seller fee must be 0, got %d", m.SellerFeeBasisPoints)
	}
	if len(m.Creators) > 0 {
		return fmt.Errorf("creators are not supported")
	}
	if m.Collection != nil {
		return fmt.Errorf("collection is not supported")
	}
	return nil
}

func checkField(field, value string, max int) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%s must be valid utf8", field)
	}
	if len(value) > max {
		return &FieldError{Field: field, Length: len(value), Max: max}
	}
	return nil
}
