package gateway

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI, *[]time.Duration) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New("http://gateway.local/", httpClient)
	slept := make([]time.Duration, 0)
	client.sleep = func(d time.Duration) { slept = append(slept, d) }
	return client, httpClient, &slept
}

func TestSend(t *testing.T) {
	client, httpClient, _ := NewMock(t)
	transfer := Transfer{Address: "zs1abc", Amount: 150000000, Memo: "Bounty: Docs (ID: b1)"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedTxID  string
		expectedError bool
	}{
		{
			name: "Success",
			prepareMock: func() {
				httpClient.EXPECT().
					Post(gomock.Any(), "http://gateway.local/send", gomock.Nil(), []byte(`{"address":"zs1abc","amount":150000000,"memo":"Bounty: Docs (ID: b1)"}`)).
					Return(http.StatusOK, []byte(`{"txid":"tx-1"}`), http.Header{}, nil)
			},
			expectedTxID: "tx-1",
		},
		{
			name: "Transport failure",
			prepareMock: func() {
				httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused"))
			},
			expectedError: true,
		},
		{
			name: "Rejected",
			prepareMock: func() {
				httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadRequest, []byte(`{"error":"insufficient funds"}`), http.Header{}, nil)
			},
			expectedError: true,
		},
		{
			name: "Missing transaction id",
			prepareMock: func() {
				httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{}`), http.Header{}, nil)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			txID, err := client.Send(context.Background(), transfer)
			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrGateway)
				assert.Empty(t, txID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTxID, txID)
		})
	}
}

func TestSendBatch(t *testing.T) {
	client, httpClient, _ := NewMock(t)
	transfers := []Transfer{{Address: "zs1a", Amount: 1}, {Address: "zs1b", Amount: 2}}
	at := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		response      string
		status        int
		expectedBatch string
		expectedError bool
	}{
		{
			name:          "Per-item results",
			status:        http.StatusOK,
			response:      `{"success":true,"batchId":"batch-1","results":[{"address":"zs1a","txid":"t1","success":true},{"address":"zs1b","success":false,"error":"bad address"}]}`,
			expectedBatch: "batch-1",
		},
		{
			name:          "Partially failed batch keeps item results",
			status:        http.StatusOK,
			response:      `{"success":false,"batchId":"batch-5","error":"1 of 2 failed","results":[{"address":"zs1a","txid":"t1","success":true},{"address":"zs1b","success":false}]}`,
			expectedBatch: "batch-5",
		},
		{
			name:          "Partially failed batch with mismatched results",
			status:        http.StatusOK,
			response:      `{"success":false,"batchId":"batch-6","results":[{"address":"zs1a","txid":"t1","success":true}]}`,
			expectedError: true,
		},
		{
			name:          "Result count mismatch",
			status:        http.StatusOK,
			response:      `{"success":true,"batchId":"batch-2","results":[{"address":"zs1a","txid":"t1","success":true}]}`,
			expectedError: true,
		},
		{
			name:          "Results out of order",
			status:        http.StatusOK,
			response:      `{"success":true,"batchId":"batch-3","results":[{"address":"zs1b","success":true},{"address":"zs1a","success":true}]}`,
			expectedError: true,
		},
		{
			name:          "Batch refused",
			status:        http.StatusOK,
			response:      `{"success":false,"batchId":"batch-4","error":"wallet locked"}`,
			expectedError: true,
		},
		{
			name:          "Server error without body",
			status:        http.StatusBadGateway,
			response:      `upstream down`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient.EXPECT().
				Post(gomock.Any(), "http://gateway.local/send-batch", gomock.Nil(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ http.Header, body []byte) (int, []byte, http.Header, error) {
					assert.Contains(t, string(body), `"batchTimestamp":"2024-06-02T00:00:00Z"`)
					return tt.status, []byte(tt.response), http.Header{}, nil
				})

			result, err := client.SendBatch(context.Background(), transfers, at)
			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrGateway)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBatch, result.BatchID)
			assert.True(t, result.Results[0].Success)
			assert.Equal(t, "t1", result.Results[0].TxID)
			assert.False(t, result.Results[1].Success)
		})
	}
}

func TestBalance(t *testing.T) {
	t.Run("Retries after rate limit", func(t *testing.T) {
		client, httpClient, slept := NewMock(t)
		gomock.InOrder(
			httpClient.EXPECT().Get(gomock.Any(), "http://gateway.local/balance", gomock.Nil()).
				Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"2"}}, nil),
			httpClient.EXPECT().Get(gomock.Any(), "http://gateway.local/balance", gomock.Nil()).
				Return(http.StatusOK, []byte(`{"balance":"12.5"}`), http.Header{}, nil),
		)

		balance, err := client.Balance(context.Background())
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.5").Equal(balance))
		assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
	})

	t.Run("Gives up after retries", func(t *testing.T) {
		client, httpClient, slept := NewMock(t)
		httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusServiceUnavailable, nil, http.Header{}, nil).Times(maxRetries)

		_, err := client.Balance(context.Background())
		assert.ErrorIs(t, err, domain.ErrGateway)
		assert.Equal(t, []time.Duration{retryInterval, 2 * retryInterval}, *slept)
	})

	t.Run("Client error is not retried", func(t *testing.T) {
		client, httpClient, _ := NewMock(t)
		httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusUnauthorized, nil, http.Header{}, nil)

		_, err := client.Balance(context.Background())
		assert.ErrorIs(t, err, domain.ErrGateway)
	})
}
