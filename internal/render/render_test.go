package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"eshop-fixtures/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundle() fixture.Bundle {
	return fixture.Build(fixture.WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("dump")
	require.NoError(t, err)
	assert.Equal(t, FormatDump, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteJSONKeepsCollectionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bundle(), FormatJSON))

	out := buf.String()
	keys := []string{`"catalogItems"`, `"catalogBrands"`, `"catalogTypes"`, `"basketItems"`, `"orders"`, `"buyers"`, `"paymentMethods"`, `"baskets"`}
	last := -1
	for _, k := range keys {
		idx := strings.Index(out, k)
		require.Greater(t, idx, last, k)
		last = idx
	}

	var decoded map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded["catalogItems"], 20)
	assert.Len(t, decoded["paymentMethods"], 3)
}

func TestWriteJSONIsStable(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, bundle(), FormatJSON))
	require.NoError(t, Write(&b, bundle(), FormatJSON))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteDumpIncludesUnexportedFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bundle(), FormatDump))

	out := buf.String()
	assert.Contains(t, out, "orderItems")
	assert.Contains(t, out, "identityGUID")
	assert.Contains(t, out, `"Under Armour"`)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, bundle(), Format("yaml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
