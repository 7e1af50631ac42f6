package gdax

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderType is the discriminant carried in the "type" field of a new order.
type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
	OrderTypeStop   OrderType = "stop"
)

// SizeOrFunds sizes an order either by base asset quantity (size) or by the
// quote asset amount to spend (funds). Exactly one applies per order; the
// inactive alternative is omitted from the wire object entirely, never
// emitted as null or zero.
type SizeOrFunds struct {
	size  *float64
	funds *float64
}

func Size(amount float64) SizeOrFunds {
	return SizeOrFunds{size: &amount}
}

func Funds(amount float64) SizeOrFunds {
	return SizeOrFunds{funds: &amount}
}

// NewOrder is a closed union of the three order shapes the exchange accepts.
// Construct values through NewLimitOrder, NewMarketOrder and NewStopOrder.
type NewOrder struct {
	orderType   OrderType
	side        Side
	productID   string
	price       float64
	sizeOrFunds SizeOrFunds
}

func NewLimitOrder(side Side, productID string, size, price float64) NewOrder {
	return NewOrder{
		orderType:   OrderTypeLimit,
		side:        side,
		productID:   productID,
		price:       price,
		sizeOrFunds: Size(size),
	}
}

func NewMarketOrder(side Side, productID string, sizeOrFunds SizeOrFunds) NewOrder {
	return NewOrder{
		orderType:   OrderTypeMarket,
		side:        side,
		productID:   productID,
		sizeOrFunds: sizeOrFunds,
	}
}

func NewStopOrder(side Side, productID string, sizeOrFunds SizeOrFunds, price float64) NewOrder {
	return NewOrder{
		orderType:   OrderTypeStop,
		side:        side,
		productID:   productID,
		price:       price,
		sizeOrFunds: sizeOrFunds,
	}
}

// Each variant maps to its own flat wire object.

type limitOrderPayload struct {
	Type      OrderType `json:"type"`
	Side      Side      `json:"side"`
	ProductID string    `json:"product_id"`
	Price     float64   `json:"price"`
	Size      float64   `json:"size"`
}

type marketOrderPayload struct {
	Type      OrderType `json:"type"`
	Side      Side      `json:"side"`
	ProductID string    `json:"product_id"`
	Size      *float64  `json:"size,omitempty"`
	Funds     *float64  `json:"funds,omitempty"`
}

type stopOrderPayload struct {
	Type      OrderType `json:"type"`
	Side      Side      `json:"side"`
	ProductID string    `json:"product_id"`
	Price     float64   `json:"price"`
	Size      *float64  `json:"size,omitempty"`
	Funds     *float64  `json:"funds,omitempty"`
}

func (o NewOrder) MarshalJSON() ([]byte, error) {
	switch o.orderType {
	case OrderTypeLimit:
		if o.sizeOrFunds.size == nil {
			return nil, errors.New("limit order requires a size")
		}
		return json.Marshal(limitOrderPayload{
			Type:      OrderTypeLimit,
			Side:      o.side,
			ProductID: o.productID,
			Price:     o.price,
			Size:      *o.sizeOrFunds.size,
		})

	case OrderTypeMarket:
		if o.sizeOrFunds.size == nil && o.sizeOrFunds.funds == nil {
			return nil, errors.New("market order requires a size or funds")
		}
		return json.Marshal(marketOrderPayload{
			Type:      OrderTypeMarket,
			Side:      o.side,
			ProductID: o.productID,
			Size:      o.sizeOrFunds.size,
			Funds:     o.sizeOrFunds.funds,
		})

	case OrderTypeStop:
		if o.sizeOrFunds.size == nil && o.sizeOrFunds.funds == nil {
			return nil, errors.New("stop order requires a size or funds")
		}
		return json.Marshal(stopOrderPayload{
			Type:      OrderTypeStop,
			Side:      o.side,
			ProductID: o.productID,
			Price:     o.price,
			Size:      o.sizeOrFunds.size,
			Funds:     o.sizeOrFunds.funds,
		})
	}

	return nil, errors.Errorf("invalid order type: %q", string(o.orderType))
}

// OpenOrder is one row of an order listing.
type OpenOrder struct {
	ID            OrderID         `json:"id"`
	Size          decimal.Decimal `json:"size"`
	Price         decimal.Decimal `json:"price"`
	ProductID     string          `json:"product_id"`
	Status        string          `json:"status"`
	FilledSize    decimal.Decimal `json:"filled_size"`
	ExecutedValue decimal.Decimal `json:"executed_value"`
	FillFees      decimal.Decimal `json:"fill_fees"`
	Settled       bool            `json:"settled"`
	Side          Side            `json:"side"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Order is the full order detail returned by /orders/{id}.
type Order struct {
	ID            OrderID         `json:"id"`
	Size          decimal.Decimal `json:"size"`
	Price         decimal.Decimal `json:"price"`
	DoneReason    string          `json:"done_reason,omitempty"`
	Status        string          `json:"status"`
	Settled       bool            `json:"settled"`
	FilledSize    decimal.Decimal `json:"filled_size"`
	ExecutedValue decimal.Decimal `json:"executed_value"`
	ProductID     string          `json:"product_id"`
	FillFees      decimal.Decimal `json:"fill_fees"`
	Side          Side            `json:"side"`
	CreatedAt     time.Time       `json:"created_at"`
	DoneAt        *time.Time      `json:"done_at,omitempty"`
}

type OrderService struct {
	client *RestClient
}

// CreateOrder submits a new order and returns the order id the exchange
// assigned to it.
func (s *OrderService) CreateOrder(ctx context.Context, order NewOrder) (OrderID, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return uuid.Nil, err
	}

	var result struct {
		ID OrderID `json:"id"`
	}
	if err := s.client.post(ctx, "/orders", body, &result); err != nil {
		return uuid.Nil, err
	}
	return result.ID, nil
}

// CancelOrder cancels a single order. The exchange replies with a list of
// cancelled ids even for a single cancellation; an empty list means the order
// was never issued and yields ErrOrderNotFound.
func (s *OrderService) CancelOrder(ctx context.Context, orderID OrderID) (OrderID, error) {
	var ids []OrderID
	if err := s.client.delete(ctx, fmt.Sprintf("/orders/%s", orderID), &ids); err != nil {
		return uuid.Nil, err
	}
	if len(ids) == 0 {
		return uuid.Nil, errors.Wrapf(ErrOrderNotFound, "cancel order %s returned no ids", orderID)
	}
	return ids[0], nil
}

// CancelAllOrders cancels every open order and returns the cancelled ids.
// Pass an empty productID to cancel across all products.
func (s *OrderService) CancelAllOrders(ctx context.Context, productID string) ([]OrderID, error) {
	refPath := "/orders"
	if len(productID) > 0 {
		refPath += "?product_id=" + productID
	}

	var ids []OrderID
	if err := s.client.delete(ctx, refPath, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetOrdersWithStatus lists orders filtered by the open/pending/active flags.
// Only the active flags contribute a status= term, joined in that order; with
// all three false no filter is sent and the exchange default applies.
func (s *OrderService) GetOrdersWithStatus(ctx context.Context, open, pending, active bool) ([]OpenOrder, error) {
	var terms []string
	if open {
		terms = append(terms, "status=open")
	}
	if pending {
		terms = append(terms, "status=pending")
	}
	if active {
		terms = append(terms, "status=active")
	}

	refPath := "/orders"
	if len(terms) > 0 {
		refPath += "?" + strings.Join(terms, "&")
	}

	var orders []OpenOrder
	if err := s.client.get(ctx, refPath, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrders lists orders in every non-terminal status.
func (s *OrderService) GetOrders(ctx context.Context) ([]OpenOrder, error) {
	return s.GetOrdersWithStatus(ctx, true, true, true)
}

// GetOrder fetches a single order by id.
func (s *OrderService) GetOrder(ctx context.Context, orderID OrderID) (*Order, error) {
	var order Order
	if err := s.client.get(ctx, fmt.Sprintf("/orders/%s", orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
