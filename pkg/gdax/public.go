package gdax

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	QuoteCurrency  string          `json:"quote_currency"`
	BaseMinSize    decimal.Decimal `json:"base_min_size"`
	BaseMaxSize    decimal.Decimal `json:"base_max_size"`
	QuoteIncrement decimal.Decimal `json:"quote_increment"`
	Status         string          `json:"status"`
	MarginEnabled  bool            `json:"margin_enabled"`
	MinMarketFunds decimal.Decimal `json:"min_market_funds"`
	MaxMarketFunds decimal.Decimal `json:"max_market_funds"`
	PostOnly       bool            `json:"post_only"`
	LimitOnly      bool            `json:"limit_only"`
	CancelOnly     bool            `json:"cancel_only"`
}

// BookEntry is one aggregated level of the book. On the wire it is the array
// [ price, size, num_orders ].
type BookEntry struct {
	Price     decimal.Decimal
	Size      decimal.Decimal
	NumOrders uint64
}

func (e *BookEntry) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	if len(fields) != 3 {
		return &DecodeError{Err: errors.Errorf("invalid book entry: expected 3 fields, got %d", len(fields)), Body: data}
	}
	if err := json.Unmarshal(fields[0], &e.Price); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	if err := json.Unmarshal(fields[1], &e.Size); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	if err := json.Unmarshal(fields[2], &e.NumOrders); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	return nil
}

// FullBookEntry is one resting order of the full book. On the wire it is the
// array [ price, size, order_id ].
type FullBookEntry struct {
	Price   decimal.Decimal
	Size    decimal.Decimal
	OrderID uuid.UUID
}

func (e *FullBookEntry) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	if len(fields) != 3 {
		return &DecodeError{Err: errors.Errorf("invalid book entry: expected 3 fields, got %d", len(fields)), Body: data}
	}
	if err := json.Unmarshal(fields[0], &e.Price); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	if err := json.Unmarshal(fields[1], &e.Size); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	if err := json.Unmarshal(fields[2], &e.OrderID); err != nil {
		return &DecodeError{Err: err, Body: data}
	}
	return nil
}

// OrderBook is a flat snapshot of the book at one aggregation level. It is
// not maintained incrementally.
type OrderBook[T any] struct {
	Sequence uint64 `json:"sequence"`
	Bids     []T    `json:"bids"`
	Asks     []T    `json:"asks"`
}

type Tick struct {
	TradeID uint64          `json:"trade_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Bid     decimal.Decimal `json:"bid"`
	Ask     decimal.Decimal `json:"ask"`
	Volume  decimal.Decimal `json:"volume"`
	Time    time.Time       `json:"time"`
}

type Trade struct {
	Time    time.Time       `json:"time"`
	TradeID uint64          `json:"trade_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Side    Side            `json:"side"`
}

// RawCandle is an array of [ time, low, high, open, close, volume ], where
// time is the bucket start in seconds since epoch.
type RawCandle []decimal.Decimal

type Candle struct {
	Time   time.Time
	Low    decimal.Decimal
	High   decimal.Decimal
	Open   decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

func (rc RawCandle) Candle() (*Candle, error) {
	if len(rc) != 6 {
		return nil, errors.New("invalid raw candle")
	}
	return &Candle{
		Time:   time.Unix(rc[0].IntPart(), 0),
		Low:    rc[1],
		High:   rc[2],
		Open:   rc[3],
		Close:  rc[4],
		Volume: rc[5],
	}, nil
}

type Stats struct {
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Volume      decimal.Decimal `json:"volume"`
	Last        decimal.Decimal `json:"last"`
	Volume30Day decimal.Decimal `json:"volume_30day"`
}

type Currency struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	MinSize decimal.Decimal `json:"min_size"`
}

type ServerTime struct {
	ISO   time.Time `json:"iso"`
	Epoch float64   `json:"epoch"`
}

// PublicService exposes the unauthenticated market data endpoints. None of
// its calls attach credential headers.
type PublicService struct {
	client *RestClient
}

func (s *PublicService) GetProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.client.getPublic(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *PublicService) getBook(ctx context.Context, product string, level Level, book interface{}) error {
	return s.client.getPublic(ctx, fmt.Sprintf("/products/%s/book?level=%d", product, level), book)
}

// GetBestOrder returns only the best bid and ask of the book.
func (s *PublicService) GetBestOrder(ctx context.Context, product string) (*OrderBook[BookEntry], error) {
	var book OrderBook[BookEntry]
	if err := s.getBook(ctx, product, LevelBest, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetTop50Orders returns the top 50 aggregated levels per side.
func (s *PublicService) GetTop50Orders(ctx context.Context, product string) (*OrderBook[BookEntry], error) {
	var book OrderBook[BookEntry]
	if err := s.getBook(ctx, product, LevelTop50, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetFullBook returns every individual resting order of the book.
func (s *PublicService) GetFullBook(ctx context.Context, product string) (*OrderBook[FullBookEntry], error) {
	var book OrderBook[FullBookEntry]
	if err := s.getBook(ctx, product, LevelFull, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *PublicService) GetProductTicker(ctx context.Context, product string) (*Tick, error) {
	var tick Tick
	if err := s.client.getPublic(ctx, fmt.Sprintf("/products/%s/ticker", product), &tick); err != nil {
		return nil, err
	}
	return &tick, nil
}

func (s *PublicService) GetTrades(ctx context.Context, product string) ([]Trade, error) {
	var trades []Trade
	if err := s.client.getPublic(ctx, fmt.Sprintf("/products/%s/trades", product), &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// GetHistoricRates returns candles of the given granularity (in seconds)
// within [start, end]. Malformed candle rows are skipped with a warning.
func (s *PublicService) GetHistoricRates(ctx context.Context, product string, start, end time.Time, granularity int) ([]Candle, error) {
	refPath := fmt.Sprintf("/products/%s/candles?start=%s&end=%s&granularity=%d",
		product,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
		granularity)

	var rawCandles []RawCandle
	if err := s.client.getPublic(ctx, refPath, &rawCandles); err != nil {
		return nil, err
	}

	candles := make([]Candle, 0, len(rawCandles))
	for _, rawCandle := range rawCandles {
		candle, err := rawCandle.Candle()
		if err != nil {
			logger.Warnf("invalid raw candle detected, skipping: %v", rawCandle)
			continue
		}
		candles = append(candles, *candle)
	}
	return candles, nil
}

func (s *PublicService) Get24HrStats(ctx context.Context, product string) (*Stats, error) {
	var stats Stats
	if err := s.client.getPublic(ctx, fmt.Sprintf("/products/%s/stats", product), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *PublicService) GetCurrencies(ctx context.Context) ([]Currency, error) {
	var currencies []Currency
	if err := s.client.getPublic(ctx, "/currencies", &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// GetTime returns the API server time.
func (s *PublicService) GetTime(ctx context.Context) (*ServerTime, error) {
	var serverTime ServerTime
	if err := s.client.getPublic(ctx, "/time", &serverTime); err != nil {
		return nil, err
	}
	return &serverTime, nil
}
