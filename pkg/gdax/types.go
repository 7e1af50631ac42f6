package gdax

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OrderID is a 128-bit identifier assigned by the exchange on order
// acceptance. The client never generates one for create operations.
type OrderID = uuid.UUID

// Side of an order or trade.
//
// The wire vocabulary is lowercase and diverges from the natural constant
// spelling, so the JSON mapping is hand-rolled in both directions: encoding
// always emits lowercase, decoding matches case-insensitively and rejects
// anything outside the vocabulary.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

func (s Side) MarshalJSON() ([]byte, error) {
	switch s {
	case SideBuy:
		return []byte(`"buy"`), nil
	case SideSell:
		return []byte(`"sell"`), nil
	}
	return nil, errors.Errorf("invalid side: %q", string(s))
}

func (s *Side) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	switch strings.ToLower(v) {
	case "buy":
		*s = SideBuy
	case "sell":
		*s = SideSell
	default:
		return &DecodeError{Err: errors.Errorf("invalid side: %q", v), Body: data}
	}
	return nil
}

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntryTypeFee      EntryType = "fee"
	EntryTypeMatch    EntryType = "match"
	EntryTypeTransfer EntryType = "transfer"
)

func (e EntryType) MarshalJSON() ([]byte, error) {
	switch e {
	case EntryTypeFee, EntryTypeMatch, EntryTypeTransfer:
		return []byte(`"` + string(e) + `"`), nil
	}
	return nil, errors.Errorf("invalid entry type: %q", string(e))
}

func (e *EntryType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	switch strings.ToLower(v) {
	case "fee":
		*e = EntryTypeFee
	case "match":
		*e = EntryTypeMatch
	case "transfer":
		*e = EntryTypeTransfer
	default:
		return &DecodeError{Err: errors.Errorf("invalid entry type: %q", v), Body: data}
	}
	return nil
}

// HoldType classifies an account hold.
type HoldType string

const (
	HoldTypeOrder    HoldType = "order"
	HoldTypeTransfer HoldType = "transfer"
)

func (h HoldType) MarshalJSON() ([]byte, error) {
	switch h {
	case HoldTypeOrder, HoldTypeTransfer:
		return []byte(`"` + string(h) + `"`), nil
	}
	return nil, errors.Errorf("invalid hold type: %q", string(h))
}

func (h *HoldType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	switch strings.ToLower(v) {
	case "order":
		*h = HoldTypeOrder
	case "transfer":
		*h = HoldTypeTransfer
	default:
		return &DecodeError{Err: errors.Errorf("invalid hold type: %q", v), Body: data}
	}
	return nil
}

// Level selects the order book aggregation of /products/{id}/book.
type Level int

const (
	// LevelBest returns only the best bid and ask.
	LevelBest Level = 1
	// LevelTop50 returns the top 50 aggregated levels per side.
	LevelTop50 Level = 2
	// LevelFull returns every individual resting order.
	LevelFull Level = 3
)
