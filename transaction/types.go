package transaction

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stremovskyy/go-payflow/consts"
)

// Params holds Payflow request parameters keyed by their upper-case API name.
type Params map[string]string

// Set stores value under the normalized form of key.
func (p Params) Set(key, value string) {
	p[NormalizeKey(key)] = value
}

// Clone returns a shallow copy of p. A nil Params yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// NormalizeKey trims and upper-cases a parameter name.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// FormatAmount renders an amount the way AMT expects it: two fraction digits.
// Callers validate precision first; values with more digits are rounded.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// SecureTokenRequest corresponds to a CREATESECURETOKEN=Y transaction.
type SecureTokenRequest struct {
	Amount decimal.Decimal

	// TrxType defaults to sale. A zero Amount is accepted only with authorization.
	TrxType consts.TrxType

	// Extra is merged over the defaults. Credentials and SECURETOKENID cannot be overridden.
	Extra Params
}

// SecureToken pairs the remote-issued token with the locally generated id it was requested with.
type SecureToken struct {
	Token string
	ID    string
}

// Response is a decoded Payflow response body.
type Response map[string][]string

// Get returns the first value for key, or "".
func (r Response) Get(key string) string {
	if vs := r[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has reports whether key is present.
func (r Response) Has(key string) bool {
	_, ok := r[key]
	return ok
}

func (r Response) RespMsg() string     { return r.Get(consts.FieldRespMsg) }
func (r Response) PNRef() string       { return r.Get(consts.FieldPNRef) }
func (r Response) SecureToken() string { return r.Get(consts.FieldSecureToken) }

// Result parses RESULT. ok is false when the field is missing or not an integer.
func (r Response) Result() (code int, ok bool) {
	if !r.Has(consts.FieldResult) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.Get(consts.FieldResult)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Approved reports RESULT == 0.
func (r Response) Approved() bool {
	code, ok := r.Result()
	return ok && code == 0
}

// Callback holds the fields Payflow posts back to the merchant's return/silent post URL.
type Callback struct {
	PNRef   string
	Result  string
	RespMsg string

	Values map[string][]string
}

// Approved reports RESULT == 0.
func (c *Callback) Approved() bool {
	return c != nil && strings.TrimSpace(c.Result) == consts.ResultApproved
}
