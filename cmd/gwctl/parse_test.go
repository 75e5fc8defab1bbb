package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNSIDAcceptsValidValue(t *testing.T) {
	v, err := parseNSID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)
}

func TestParseNSIDRejectsNonNumeric(t *testing.T) {
	_, err := parseNSID("abc")
	require.Error(t, err)
	var ue *usageErr
	require.ErrorAs(t, err, &ue)
}

func TestParseNSIDRejectsOverflow(t *testing.T) {
	_, err := parseNSID("99999999999")
	require.Error(t, err)
}

func TestParseUint64AcceptsValidValue(t *testing.T) {
	v, err := parseUint64("1099511627776")
	require.NoError(t, err)
	assert.EqualValues(t, 1099511627776, v)
}

func TestParseUint64RejectsNegative(t *testing.T) {
	_, err := parseUint64("-1")
	require.Error(t, err)
}

func TestParseInt32AcceptsValidValue(t *testing.T) {
	v, err := parseInt32("-7")
	require.NoError(t, err)
	assert.EqualValues(t, -7, v)
}

func TestParseInt32RejectsNonNumeric(t *testing.T) {
	_, err := parseInt32("notanumber")
	require.Error(t, err)
}
