package httpx

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageDefaults(t *testing.T) {
	cases := []struct {
		query       string
		page, limit int64
	}{
		{"", 1, 50},
		{"page=3&limit=10", 3, 10},
		{"page=abc&limit=xyz", 1, 50},
		{"page=0&limit=-4", 1, 50},
		{"page=2&limit=100000", 2, 100000},
	}
	for _, tc := range cases {
		values, err := url.ParseQuery(tc.query)
		require.NoError(t, err)
		page, limit := ParsePage(values, 1, 50)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.limit, limit, tc.query)
	}
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"20"}}, 20, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), limit)
	assert.Equal(t, int64(20), offset)

	_, _, err = ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100)
	assert.EqualError(t, err, "invalid limit")

	_, _, err = ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100)
	assert.EqualError(t, err, "invalid offset")
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(strings.NewReader(`{"name":"x"}`), &v))
	assert.Equal(t, "x", v.Name)

	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"x","extra":1}`), &v))
	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"x"}{"name":"y"}`), &v))
}
