package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayScan(t *testing.T) {
	var tags StringArray
	require.NoError(t, tags.Scan(`{"SV Viktoria Wertheim","FC Testheim","Spielbericht"}`))
	assert.Equal(t, StringArray{"SV Viktoria Wertheim", "FC Testheim", "Spielbericht"}, tags)

	require.NoError(t, tags.Scan(nil))
	assert.Empty(t, tags)

	require.NoError(t, tags.Scan("{}"))
	assert.Empty(t, tags)
}

func TestStringArrayScanRejectsUnsupportedType(t *testing.T) {
	var tags StringArray
	err := tags.Scan(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot scan int")
}

func TestStringArrayValue(t *testing.T) {
	value, err := StringArray{"SV Viktoria Wertheim", "FC Testheim"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"SV Viktoria Wertheim","FC Testheim"}`, value)

	empty, err := StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", empty)
}
