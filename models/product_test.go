package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFlexPriceUnmarshalJSONNumber(t *testing.T) {
	t.Parallel()

	var p FlexPrice
	require.NoError(t, json.Unmarshal([]byte(`249.5`), &p))
	assert.Equal(t, FlexPrice(249.5), p)
}

func TestFlexPriceUnmarshalJSONCurrencyString(t *testing.T) {
	t.Parallel()

	var p FlexPrice
	require.NoError(t, json.Unmarshal([]byte(`"₹249.50"`), &p))
	assert.Equal(t, FlexPrice(249.5), p)

	require.NoError(t, json.Unmarshal([]byte(`" 99 "`), &p))
	assert.Equal(t, FlexPrice(99), p)
}

func TestFlexPriceUnmarshalJSONInvalid(t *testing.T) {
	t.Parallel()

	var p FlexPrice
	assert.Error(t, json.Unmarshal([]byte(`"₹abc"`), &p))
}

func TestFlexPriceMarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(FlexPrice(119))
	require.NoError(t, err)
	assert.Equal(t, "119", string(out))
}

func TestFlexPriceBSONRoundTrip(t *testing.T) {
	t.Parallel()

	type doc struct {
		Price FlexPrice `bson:"price"`
	}

	raw, err := bson.Marshal(doc{Price: 249.5})
	require.NoError(t, err)

	var got doc
	require.NoError(t, bson.Unmarshal(raw, &got))
	assert.Equal(t, FlexPrice(249.5), got.Price)
}

func TestFlexPriceBSONDecodesLegacyForms(t *testing.T) {
	t.Parallel()

	type doc struct {
		Price FlexPrice `bson:"price"`
	}

	// Older documents stored prices as currency-prefixed strings or ints.
	for _, value := range []interface{}{"₹249.50", int32(249), int64(249)} {
		raw, err := bson.Marshal(bson.M{"price": value})
		require.NoError(t, err)

		var got doc
		require.NoError(t, bson.Unmarshal(raw, &got))
		assert.InDelta(t, 249, float64(got.Price), 0.5)
	}
}
