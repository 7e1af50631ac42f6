package gdax

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderKeys(t *testing.T, order NewOrder) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(order)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))
	return fields
}

func TestNewOrder_LimitEncoding(t *testing.T) {
	order := NewLimitOrder(SideBuy, "BTC-USD", 1.0, 100.0)
	data, err := json.Marshal(order)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"type":"limit","side":"buy","product_id":"BTC-USD","price":100.0,"size":1.0}`, string(data))

	fields := orderKeys(t, order)
	_, hasFunds := fields["funds"]
	assert.False(t, hasFunds, "limit order must not carry a funds key")
}

func TestNewOrder_MarketSizeOrFunds(t *testing.T) {
	fields := orderKeys(t, NewMarketOrder(SideBuy, "BTC-USD", Size(1.5)))
	assert.Equal(t, "market", fields["type"])
	assert.Contains(t, fields, "size")
	assert.NotContains(t, fields, "funds")
	assert.NotContains(t, fields, "price")

	fields = orderKeys(t, NewMarketOrder(SideSell, "BTC-USD", Funds(10000.0)))
	assert.Contains(t, fields, "funds")
	assert.NotContains(t, fields, "size")
}

func TestNewOrder_StopSizeOrFunds(t *testing.T) {
	fields := orderKeys(t, NewStopOrder(SideSell, "ETH-USD", Size(2.0), 150.0))
	assert.Equal(t, "stop", fields["type"])
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "size")
	assert.NotContains(t, fields, "funds")

	fields = orderKeys(t, NewStopOrder(SideBuy, "ETH-USD", Funds(500.0), 150.0))
	assert.Contains(t, fields, "funds")
	assert.NotContains(t, fields, "size")
}

func TestNewOrder_MissingSizeOrFunds(t *testing.T) {
	_, err := json.Marshal(NewMarketOrder(SideBuy, "BTC-USD", SizeOrFunds{}))
	assert.Error(t, err)

	_, err = json.Marshal(NewStopOrder(SideBuy, "BTC-USD", SizeOrFunds{}, 100.0))
	assert.Error(t, err)
}

func TestNewOrder_SideEncoding(t *testing.T) {
	fields := orderKeys(t, NewLimitOrder(SideSell, "BTC-USD", 1.0, 100.0))
	assert.Equal(t, "sell", fields["side"])
}
