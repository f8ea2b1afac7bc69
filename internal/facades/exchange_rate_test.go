package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// --- Fake gRPC client ---
type fakeExchangeClient struct {
	rates map[string]float32
	err   error
	md    metadata.MD
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	f.md, _ = metadata.FromOutgoingContext(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRatesResponse{Rates: f.rates}, nil
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "not used")
}

func newTestGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	f := NewExchangeRatesGRPCFacade(client)
	f.now = func() time.Time { return time.Date(2025, 10, 29, 23, 0, 0, 0, time.UTC) }
	return f
}

// --- Tests ---
func TestGRPCFetchRates(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"EUR": 0.5,
			"RUB": 90,
		},
	}
	facade := newTestGRPCFacade(client)

	snapshot, err := facade.FetchRates(context.Background(), "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RateTable{"EUR": 0.5, "RUB": 90}, snapshot.Rates)
	assert.Equal(t, "2025-10-29", snapshot.Date)
	assert.Equal(t, []string{"secret"}, client.md.Get("authorization"))
}

func TestGRPCFetchRates_NoKeyNoMetadata(t *testing.T) {
	client := &fakeExchangeClient{rates: map[string]float32{"EUR": 0.5}}

	_, err := newTestGRPCFacade(client).FetchRates(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, client.md.Get("authorization"))
}

func TestGRPCFetchRates_Errors(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeExchangeClient
		wantErr error
	}{
		{
			name:    "unauthenticated",
			client:  &fakeExchangeClient{err: status.Error(codes.Unauthenticated, "bad key")},
			wantErr: ErrAuth,
		},
		{
			name:    "quota",
			client:  &fakeExchangeClient{err: status.Error(codes.ResourceExhausted, "slow down")},
			wantErr: ErrAuth,
		},
		{
			name:    "unavailable",
			client:  &fakeExchangeClient{err: status.Error(codes.Unavailable, "connection refused")},
			wantErr: ErrNetwork,
		},
		{
			name:    "plain_error",
			client:  &fakeExchangeClient{err: errors.New("grpc error")},
			wantErr: ErrNetwork,
		},
		{
			name:    "no_rates",
			client:  &fakeExchangeClient{},
			wantErr: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := newTestGRPCFacade(tt.client).FetchRates(context.Background(), "secret")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, snapshot)
		})
	}
}

func TestGRPCFetchCurrencyTable(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"EUR": 0.9,
			"XYZ": 3,
		},
	}

	table, err := newTestGRPCFacade(client).FetchCurrencyTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyTable{
		"USD": "US Dollar",
		"EUR": "Euro",
		"XYZ": "XYZ",
	}, table)
}

func TestGRPCFetchCurrencyTable_Error(t *testing.T) {
	client := &fakeExchangeClient{err: status.Error(codes.Unavailable, "down")}

	table, err := newTestGRPCFacade(client).FetchCurrencyTable(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Nil(t, table)

	table, err = newTestGRPCFacade(&fakeExchangeClient{rates: map[string]float32{}}).FetchCurrencyTable(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
	assert.Nil(t, table)
}
