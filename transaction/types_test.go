package transaction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParamsSetNormalizesKey(t *testing.T) {
	p := Params{}
	p.Set(" comment1 ", "x")
	require.Equal(t, Params{"COMMENT1": "x"}, p)
}

func TestParamsCloneOfNil(t *testing.T) {
	var p Params
	c := p.Clone()
	require.NotNil(t, c)
	c["A"] = "1"
	require.Nil(t, p)
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "1.00", FormatAmount(decimal.NewFromInt(1)))
	require.Equal(t, "10.50", FormatAmount(decimal.RequireFromString("10.5")))
	require.Equal(t, "0.00", FormatAmount(decimal.Zero))
	require.Equal(t, "7.10", FormatAmount(decimal.RequireFromString("7.100")))
}

func TestResponseAccessors(t *testing.T) {
	r := Response{
		"RESULT":      {"0"},
		"RESPMSG":     {"Approved"},
		"PNREF":       {"V19A2E4F1B2C"},
		"SECURETOKEN": {"ABC123", "IGNORED"},
	}

	code, ok := r.Result()
	require.True(t, ok)
	require.Equal(t, 0, code)
	require.True(t, r.Approved())
	require.Equal(t, "Approved", r.RespMsg())
	require.Equal(t, "V19A2E4F1B2C", r.PNRef())
	require.Equal(t, "ABC123", r.SecureToken())
	require.Equal(t, "", r.Get("MISSING"))
}

func TestResponseResultNotApproved(t *testing.T) {
	tests := []struct {
		name string
		r    Response
		ok   bool
	}{
		{name: "declined", r: Response{"RESULT": {"12"}}, ok: true},
		{name: "negative", r: Response{"RESULT": {"-1"}}, ok: true},
		{name: "missing", r: Response{}, ok: false},
		{name: "garbage", r: Response{"RESULT": {"x"}}, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := tc.r.Result()
			require.Equal(t, tc.ok, ok)
			require.False(t, tc.r.Approved())
		})
	}
}

func TestCallbackApproved(t *testing.T) {
	require.True(t, (&Callback{Result: "0"}).Approved())
	require.False(t, (&Callback{Result: "126"}).Approved())
	var c *Callback
	require.False(t, c.Approved())
}
