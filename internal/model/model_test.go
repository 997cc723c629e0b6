package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDecimalSerialization(t *testing.T) {
	buy := decimal.RequireFromString("48.81")
	msrp := decimal.RequireFromString("95.70")
	p := Product{ID: 1, ProductCode: "S10_1678", BuyPrice: buy, MSRP: msrp}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"buyPrice":48.81`)
	// String() drops trailing fractional zeros, so 95.70 goes out as 95.7.
	assert.Contains(t, string(out), `"msrp":95.7`)
	assert.NotContains(t, string(out), `"msrp":"`)

	var back Product
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.BuyPrice.Equal(buy))
	assert.True(t, back.MSRP.Equal(msrp))
}

func TestCustomerCreditLimitNullHandling(t *testing.T) {
	var c Customer
	require.NoError(t, json.Unmarshal([]byte(`{"customerName":"Mini Gifts","creditLimit":null}`), &c))
	assert.False(t, c.CreditLimit.Valid)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"creditLimit":null`)

	require.NoError(t, json.Unmarshal([]byte(`{"creditLimit":1000.00}`), &c))
	require.True(t, c.CreditLimit.Valid)
	assert.True(t, c.CreditLimit.Decimal.Equal(decimal.RequireFromString("1000")))
}

func TestUnknownJSONKeysIgnored(t *testing.T) {
	var o Office
	err := json.Unmarshal([]byte(`{"city":"Paris","bogus":true}`), &o)
	require.NoError(t, err)
	assert.Equal(t, "Paris", o.City)
}
