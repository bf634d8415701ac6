package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wring/pkg/ring"
)

func TestDirection_ReverseIsInvolutive(t *testing.T) {
	assert.Equal(t, ring.Backward, ring.Forward.Reverse())
	assert.Equal(t, ring.Forward, ring.Backward.Reverse())
	assert.Equal(t, ring.Forward, ring.Forward.Reverse().Reverse())
	assert.Equal(t, ring.Backward, ring.Backward.Reverse().Reverse())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "forward", ring.Forward.String())
	assert.Equal(t, "backward", ring.Backward.String())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    ring.Direction
		wantErr bool
	}{
		{in: "forward", want: ring.Forward},
		{in: "Forward", want: ring.Forward},
		{in: "next", want: ring.Forward},
		{in: "backward", want: ring.Backward},
		{in: " BACKWARD ", want: ring.Backward},
		{in: "prev", want: ring.Backward},
		{in: "previous", want: ring.Backward},
		{in: "sideways", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ring.ParseDirection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
