package go_payflow

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/stremovskyy/go-payflow/consts"
	"github.com/stremovskyy/go-payflow/internal/httpclient"
	"github.com/stremovskyy/go-payflow/internal/nvp"
	"github.com/stremovskyy/go-payflow/log"
	"github.com/stremovskyy/go-payflow/transaction"
	"github.com/stremovskyy/recorder"
)

// Client is the Payflow Pro client.
//
// It supports:
//   - Secure token creation for hosted checkout
//   - Delayed capture and credit against a prior PNREF
//   - Arbitrary transactions via Do
//
// Credentials are merged into every request. The client holds no per-call
// state and is safe for concurrent use.
type Client struct {
	cfg      Config
	opts     options
	endpoint string

	transport *httpclient.Client
}

// identityParams can never be overridden by caller-supplied extras.
var identityParams = []string{
	consts.ParamPartner,
	consts.ParamVendor,
	consts.ParamUser,
	consts.ParamPassword,
}

func NewClient(cfg Config, opts ...Option) (Payflow, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, &ConfigError{Fields: []FieldError{{Field: "option", Message: err.Error()}}}
		}
	}

	c := &Client{
		cfg:      cfg,
		opts:     o,
		endpoint: cfg.EndpointURL(),
	}
	if o.endpointURL != "" {
		c.endpoint = o.endpointURL
	}
	c.transport = httpclient.New(o.httpClient, o.logger, o.recorder, o.logBodies)
	return c, nil
}

// NewClientWithRecorder is NewClient with a recorder attached.
func NewClientWithRecorder(rec recorder.Recorder, cfg Config, opts ...Option) (Payflow, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(cfg, opts...)
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.endpoint
}

// SetLogLevel updates the log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.opts.logger == nil {
		return
	}
	if l, ok := c.opts.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

// RequestSecureToken asks Payflow for a secure token to hand to the hosted checkout page.
//
// The returned SecureToken.ID is the SECURETOKENID generated for this call.
// Under DryRun the token is empty.
func (c *Client) RequestSecureToken(ctx context.Context, req *transaction.SecureTokenRequest, runOpts ...RunOption) (*transaction.SecureToken, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateSecureTokenRequest(req); err != nil {
		return nil, err
	}

	tokenID, err := newSecureTokenID()
	if err != nil {
		return nil, fmt.Errorf("generate secure token id: %w", err)
	}
	trxType := req.TrxType
	if trxType == "" {
		trxType = consts.TrxTypeSale
	}

	params := c.buildParams(map[string]string{
		consts.ParamTrxType:           string(trxType),
		consts.ParamAmount:            transaction.FormatAmount(req.Amount),
		consts.ParamCreateSecureToken: "Y",
		consts.ParamSecureTokenID:     tokenID,
	}, req.Extra, consts.ParamSecureTokenID)
	if req.Amount.IsZero() && params[consts.ParamTrxType] != string(consts.TrxTypeAuthorization) {
		return nil, &ValidationError{Fields: []FieldError{{Field: consts.ParamAmount, Message: "may be 0 only for A (authorization)"}}}
	}

	resp, err := c.send(ctx, params, runOpts)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return &transaction.SecureToken{ID: tokenID}, nil
	}

	token := resp.SecureToken()
	if token == "" {
		return nil, &ProtocolError{
			Field:   consts.FieldSecureToken,
			Result:  resp.Get(consts.FieldResult),
			RespMsg: resp.RespMsg(),
		}
	}
	return &transaction.SecureToken{Token: token, ID: tokenID}, nil
}

// CapturePayment captures a prior authorization (delayed capture).
//
// The full response is returned; check Approved() or Result() for the outcome.
func (c *Client) CapturePayment(ctx context.Context, origID string, extra transaction.Params, runOpts ...RunOption) (transaction.Response, error) {
	return c.referenceTransaction(ctx, consts.TrxTypeDelayedCapture, origID, extra, runOpts)
}

// RefundPayment issues a credit against a prior transaction.
func (c *Client) RefundPayment(ctx context.Context, origID string, extra transaction.Params, runOpts ...RunOption) (transaction.Response, error) {
	return c.referenceTransaction(ctx, consts.TrxTypeCredit, origID, extra, runOpts)
}

// Do sends an arbitrary transaction with credentials merged in. TRXTYPE is required.
func (c *Client) Do(ctx context.Context, params transaction.Params, runOpts ...RunOption) (transaction.Response, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	merged := c.buildParams(nil, params)
	if strings.TrimSpace(merged[consts.ParamTrxType]) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: consts.ParamTrxType, Message: "is required"}}}
	}
	return c.send(ctx, merged, runOpts)
}

func (c *Client) referenceTransaction(ctx context.Context, trxType consts.TrxType, origID string, extra transaction.Params, runOpts []RunOption) (transaction.Response, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	origID = strings.TrimSpace(origID)
	if origID == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: consts.ParamOrigID, Message: "is required"}}}
	}

	params := c.buildParams(map[string]string{
		consts.ParamTrxType: string(trxType),
		consts.ParamTender:  string(consts.TenderCreditCard),
		consts.ParamOrigID:  origID,
	}, extra)
	return c.send(ctx, params, runOpts)
}

// buildParams layers credentials, operation defaults and caller extras, in that order.
// Extras naming an identity field or one of locked are dropped.
func (c *Client) buildParams(defaults map[string]string, extra transaction.Params, locked ...string) map[string]string {
	out := c.cfg.Credentials.params()
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range extra {
		key := transaction.NormalizeKey(k)
		if key == "" {
			continue
		}
		if isLocked(key, locked) {
			c.opts.logger.Warnf("[Payflow] ignoring override of protected parameter %s", key)
			continue
		}
		out[key] = v
	}
	return out
}

func isLocked(key string, locked []string) bool {
	for _, k := range identityParams {
		if k == key {
			return true
		}
	}
	for _, k := range locked {
		if k == key {
			return true
		}
	}
	return false
}

// sensitiveParams are masked in logs, recordings and dry-run output.
var sensitiveParams = []string{
	consts.ParamPassword,
	consts.ParamAcct,
	consts.ParamCVV2,
	consts.ParamExpDate,
}

// send posts params and decodes the response. A nil response with a nil error means dry run.
func (c *Client) send(ctx context.Context, params map[string]string, runOpts []RunOption) (transaction.Response, error) {
	payload := httpclient.Payload{
		Body:     nvp.Encode(params),
		Redacted: nvp.Encode(nvp.Redact(params, sensitiveParams...)),
	}
	if shouldDryRun(runOpts, http.MethodPost, c.endpoint, payload.Redacted) {
		return nil, nil
	}

	_, raw, err := c.transport.PostForm(ctx, c.endpoint, payload)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	values, err := nvp.Decode(raw)
	if err != nil {
		c.opts.logger.Warnf("[Payflow] skipped malformed response pairs: %v", err)
	}
	return transaction.Response(values), nil
}

func wrapTransportError(err error) error {
	if err == nil {
		return nil
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return &TransportError{StatusCode: hs.StatusCode, Body: hs.Body, Err: err}
	}
	return &TransportError{Err: err}
}

// newSecureTokenID returns 32 lowercase hex characters from a random (v4) UUID.
func newSecureTokenID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(u[:]), nil
}

// validateSecureTokenRequest checks the amount as it will be sent. TRXTYPE is
// not restricted here; any code, including one passed through Extra, goes out as is.
func validateSecureTokenRequest(req *transaction.SecureTokenRequest) error {
	ve := &ValidationError{}
	if req.Amount.IsNegative() {
		ve.Add(consts.ParamAmount, "must be >= 0")
	}
	if !req.Amount.Equal(req.Amount.Round(2)) {
		ve.Add(consts.ParamAmount, "must have at most 2 fraction digits")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
