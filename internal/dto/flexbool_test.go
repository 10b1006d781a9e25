package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool_AceptaBooleanoYString(t *testing.T) {
	casos := []struct {
		entrada string
		quiere  bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`null`, false},
	}
	for _, c := range casos {
		var f FlexBool
		require.NoError(t, json.Unmarshal([]byte(c.entrada), &f), c.entrada)
		assert.Equal(t, c.quiere, bool(f), c.entrada)
	}
}

func TestFlexBool_RechazaOtrosValores(t *testing.T) {
	for _, entrada := range []string{`"yes"`, `"TRUE"`, `1`, `0`, `[]`, `{}`} {
		var f FlexBool
		assert.Error(t, json.Unmarshal([]byte(entrada), &f), entrada)
	}
}

func TestFlexBool_PunteroNilEsFalse(t *testing.T) {
	var f *FlexBool
	assert.False(t, f.Bool())

	v := FlexBool(true)
	assert.True(t, (&v).Bool())
}

func TestFlexBool_Marshal(t *testing.T) {
	out, err := json.Marshal(FlexBool(true))
	require.NoError(t, err)
	assert.Equal(t, `true`, string(out))
}
