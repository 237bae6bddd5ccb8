// Package gateway is the HTTP client of the payment service that executes transfers.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/domain"
	"github.com/GlebRadaev/bountyhub/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Transfer struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
	Memo    string `json:"memo,omitempty"`
}

type sendResponse struct {
	TxID  string `json:"txid"`
	Error string `json:"error,omitempty"`
}

type batchRequest struct {
	Payments       []Transfer `json:"payments"`
	BatchTimestamp time.Time  `json:"batchTimestamp"`
}

type ItemResult struct {
	Address string `json:"address"`
	TxID    string `json:"txid"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BatchResult struct {
	Success bool         `json:"success"`
	BatchID string       `json:"batchId"`
	Results []ItemResult `json:"results"`
	Error   string       `json:"error,omitempty"`
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
	sleep  func(time.Duration)
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    strings.TrimRight(url, "/"),
		client: client,
		sleep:  time.Sleep,
	}
}

func gatewayError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrGateway, fmt.Sprintf(format, args...))
}

// Send executes one transfer. It is never retried: a lost response may still have moved money.
func (c *Client) Send(ctx context.Context, t Transfer) (string, error) {
	body, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	status, respBody, _, err := c.client.Post(ctx, c.url+"/send", nil, body)
	if err != nil {
		zap.L().Error("payment gateway send failed", zap.String("address", t.Address), zap.Error(err))
		return "", gatewayError("send: %v", err)
	}

	var resp sendResponse
	if jerr := json.Unmarshal(respBody, &resp); jerr != nil && status == http.StatusOK {
		return "", gatewayError("decode send response: %v", jerr)
	}
	if status != http.StatusOK {
		return "", gatewayError("send returned %d: %s", status, resp.Error)
	}
	if resp.TxID == "" {
		return "", gatewayError("send returned no transaction id")
	}
	return resp.TxID, nil
}

// SendBatch submits every transfer in one request. The result is rejected as ambiguous when the
// per-item results do not line up with the request.
func (c *Client) SendBatch(ctx context.Context, transfers []Transfer, at time.Time) (*BatchResult, error) {
	body, err := json.Marshal(batchRequest{Payments: transfers, BatchTimestamp: at.UTC()})
	if err != nil {
		return nil, err
	}
	status, respBody, _, err := c.client.Post(ctx, c.url+"/send-batch", nil, body)
	if err != nil {
		zap.L().Error("payment gateway batch failed", zap.Int("payments", len(transfers)), zap.Error(err))
		return nil, gatewayError("send batch: %v", err)
	}

	var result BatchResult
	if jerr := json.Unmarshal(respBody, &result); jerr != nil {
		if status != http.StatusOK {
			return nil, gatewayError("send batch returned %d", status)
		}
		return nil, gatewayError("decode batch response: %v", jerr)
	}
	if len(result.Results) == 0 && (status != http.StatusOK || !result.Success) {
		return &result, gatewayError("batch %s rejected (%d): %s", result.BatchID, status, result.Error)
	}
	if len(result.Results) != len(transfers) {
		return &result, gatewayError("batch %s returned %d results for %d payments",
			result.BatchID, len(result.Results), len(transfers))
	}
	for i, item := range result.Results {
		if item.Address != transfers[i].Address {
			return &result, gatewayError("batch %s result %d is for %s, expected %s",
				result.BatchID, i, item.Address, transfers[i].Address)
		}
	}
	if status != http.StatusOK || !result.Success {
		// Per-item results decide what was paid once they match the request.
		zap.L().Warn("payment gateway reported a partially failed batch",
			zap.String("batch_id", result.BatchID), zap.Int("status", status), zap.String("error", result.Error))
	}
	return &result, nil
}

// Balance reads the wallet balance, retrying transient failures.
func (c *Client) Balance(ctx context.Context) (decimal.Decimal, error) {
	url := c.url + "/balance"
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}

		status, respBody, respHeaders, err := c.client.Get(ctx, url, nil)
		switch {
		case err != nil:
			lastErr = err
		case status == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited")
			c.sleep(retryAfter(respHeaders, attempt))
			continue
		case status >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("status %d", status)
		case status == http.StatusOK:
			var resp balanceResponse
			if err := json.Unmarshal(respBody, &resp); err != nil {
				return decimal.Zero, gatewayError("decode balance: %v", err)
			}
			return resp.Balance, nil
		default:
			return decimal.Zero, gatewayError("balance returned %d", status)
		}

		zap.L().Warn("balance request failed, retrying", zap.Int("attempt", attempt), zap.Error(lastErr))
		if attempt < maxRetries {
			c.sleep(retryInterval * time.Duration(attempt))
		}
	}
	return decimal.Zero, gatewayError("balance after %d attempts: %v", maxRetries, lastErr)
}

func retryAfter(headers http.Header, attempt int) time.Duration {
	wait := retryInterval * time.Duration(attempt)
	if raw := headers.Get("Retry-After"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil {
			wait = time.Duration(seconds) * time.Second
		}
	}
	return wait
}
