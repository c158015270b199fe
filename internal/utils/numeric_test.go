package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatWireShapes(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    *float64
		wantErr bool
	}{
		{"number", `12.5`, ptrFloat(12.5), false},
		{"numeric string", `"12.5"`, ptrFloat(12.5), false},
		{"padded numeric string", `" 7 "`, ptrFloat(7), false},
		{"empty string", `""`, nil, false},
		{"null", `null`, nil, false},
		{"garbage string", `"abc"`, nil, true},
		{"bool", `true`, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexFloat
			err := json.Unmarshal([]byte(tc.in), &f)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Value)
		})
	}
}

func TestFlexIntRejectsFractions(t *testing.T) {
	var n FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"4"`), &n))
	require.NotNil(t, n.Value)
	assert.Equal(t, 4, *n.Value)

	assert.Error(t, json.Unmarshal([]byte(`4.5`), &n))
}

func TestFlexFloatMarshalsAbsentAsNull(t *testing.T) {
	out, err := json.Marshal(FlexFloat{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = json.Marshal(FlexFloat{Value: ptrFloat(3)})
	require.NoError(t, err)
	assert.Equal(t, "3", string(out))
}

func ptrFloat(f float64) *float64 { return &f }
