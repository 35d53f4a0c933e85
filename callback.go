package go_payflow

import (
	"net/url"
	"strings"

	"github.com/stremovskyy/go-payflow/consts"
	"github.com/stremovskyy/go-payflow/transaction"
)

// ParseCallback validates the fields Payflow posts back after a hosted checkout.
// PNREF and RESULT must be present and non-empty.
func ParseCallback(values url.Values) (*transaction.Callback, error) {
	ve := &ValidationError{}
	pnref := strings.TrimSpace(values.Get(consts.FieldPNRef))
	if pnref == "" {
		ve.Add(consts.FieldPNRef, "is required")
	}
	result := strings.TrimSpace(values.Get(consts.FieldResult))
	if result == "" {
		ve.Add(consts.FieldResult, "is required")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	raw := make(map[string][]string, len(values))
	for k, vs := range values {
		raw[k] = append([]string(nil), vs...)
	}
	return &transaction.Callback{
		PNRef:   pnref,
		Result:  result,
		RespMsg: values.Get(consts.FieldRespMsg),
		Values:  raw,
	}, nil
}
