package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{Amount: MustAmount("100.50")})

	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":100.5}`, string(data))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "number", input: `100`, want: "100"},
		{name: "fraction", input: `12.25`, want: "12.25"},
		{name: "quoted number", input: `"250"`, want: "250"},
		{name: "null", input: `null`, wantErr: true},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a := MustAmount("0.1").Add(MustAmount("0.2"))

	assert.True(t, a.Equal(MustAmount("0.3")))
	assert.Equal(t, "-0.7", a.Sub(MustAmount("1")).String())
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := ParseAmount("ten")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
