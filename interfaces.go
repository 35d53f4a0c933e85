package go_payflow

import (
	"context"

	"github.com/stremovskyy/go-payflow/log"
	"github.com/stremovskyy/go-payflow/transaction"
)

// Payflow is the main client interface.
type Payflow interface {
	RequestSecureToken(ctx context.Context, req *transaction.SecureTokenRequest, runOpts ...RunOption) (*transaction.SecureToken, error)
	CapturePayment(ctx context.Context, origID string, extra transaction.Params, runOpts ...RunOption) (transaction.Response, error)
	RefundPayment(ctx context.Context, origID string, extra transaction.Params, runOpts ...RunOption) (transaction.Response, error)
	Do(ctx context.Context, params transaction.Params, runOpts ...RunOption) (transaction.Response, error)

	Endpoint() string
	SetLogLevel(level log.Level)
}

var _ Payflow = (*Client)(nil)
