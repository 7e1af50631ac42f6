package gdax

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSide_UnmarshalCaseInsensitive(t *testing.T) {
	for _, raw := range []string{`"buy"`, `"BUY"`, `"Buy"`} {
		var s Side
		err := json.Unmarshal([]byte(raw), &s)
		assert.NoError(t, err)
		assert.Equal(t, SideBuy, s)
	}

	var s Side
	err := json.Unmarshal([]byte(`"sElL"`), &s)
	assert.NoError(t, err)
	assert.Equal(t, SideSell, s)
}

func TestSide_UnmarshalInvalid(t *testing.T) {
	var s Side
	err := json.Unmarshal([]byte(`"long"`), &s)
	assert.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestSide_MarshalLowercase(t *testing.T) {
	out, err := json.Marshal(SideBuy)
	assert.NoError(t, err)
	assert.Equal(t, `"buy"`, string(out))

	out, err = json.Marshal(SideSell)
	assert.NoError(t, err)
	assert.Equal(t, `"sell"`, string(out))

	_, err = json.Marshal(Side("long"))
	assert.Error(t, err)
}

func TestEntryType_Unmarshal(t *testing.T) {
	cases := map[string]EntryType{
		`"fee"`:      EntryTypeFee,
		`"Match"`:    EntryTypeMatch,
		`"TRANSFER"`: EntryTypeTransfer,
	}
	for raw, expected := range cases {
		var e EntryType
		err := json.Unmarshal([]byte(raw), &e)
		assert.NoError(t, err)
		assert.Equal(t, expected, e)
	}

	var e EntryType
	err := json.Unmarshal([]byte(`"rebate"`), &e)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestHoldType_Unmarshal(t *testing.T) {
	cases := map[string]HoldType{
		`"order"`:    HoldTypeOrder,
		`"Transfer"`: HoldTypeTransfer,
	}
	for raw, expected := range cases {
		var h HoldType
		err := json.Unmarshal([]byte(raw), &h)
		assert.NoError(t, err)
		assert.Equal(t, expected, h)
	}

	var h HoldType
	err := json.Unmarshal([]byte(`"hold"`), &h)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
