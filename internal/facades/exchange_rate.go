package facades

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ExchangeRatesGRPCFacade reads rates from the gw-exchanger gRPC service.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
	now    func() time.Time
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client, now: time.Now}
}

// FetchRates fetches all exchange rates. The exchanger does not report an
// as-of time, so the snapshot is dated with the fetch day.
func (f *ExchangeRatesGRPCFacade) FetchRates(ctx context.Context, apiKey string) (*models.RatesSnapshot, error) {
	if apiKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", apiKey)
	}

	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, classifyGRPC(err)
	}
	if resp.Rates == nil {
		return nil, fmt.Errorf("%w: response has no rates", ErrDecode)
	}

	rates := make(models.RateTable, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate)
	}

	return &models.RatesSnapshot{
		Rates: rates,
		Date:  models.FormatRatesDate(f.now()),
	}, nil
}

// FetchCurrencyTable derives the currency table from the codes the exchanger
// quotes. Names come from the built-in table; unknown codes are named by
// their code.
func (f *ExchangeRatesGRPCFacade) FetchCurrencyTable(ctx context.Context) (models.CurrencyTable, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch currencies via gRPC", "error", err)
		return nil, classifyGRPC(err)
	}
	if len(resp.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty currency list", ErrDecode)
	}

	names := models.DefaultCurrencies()
	table := make(models.CurrencyTable, len(resp.Rates)+1)
	table[models.Pivot] = names[models.Pivot]
	for code := range resp.Rates {
		if name, ok := names[code]; ok {
			table[code] = name
		} else {
			table[code] = code
		}
	}
	return table, nil
}

func classifyGRPC(err error) error {
	switch status.Code(err) {
	case codes.Unauthenticated, codes.PermissionDenied, codes.ResourceExhausted:
		return fmt.Errorf("%w: %w", ErrAuth, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}
