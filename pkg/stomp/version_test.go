package stomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "empty string falls back to default", input: "", want: Version10},
		{name: "single descriptor", input: "1.1", want: Version11},
		{name: "newest descriptor", input: "1.2", want: Version12},
		{name: "unrecognized but numeric", input: "2.0", want: Version(2.0)},
		{name: "non-numeric descriptor", input: "one.two", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVersion(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsFormatError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNegotiateVersion(t *testing.T) {
	tests := []struct {
		name    string
		offered []string
		want    Version
		wantErr bool
	}{
		{name: "nil list falls back to default", offered: nil, want: Version10},
		{name: "empty list falls back to default", offered: []string{}, want: Version10},
		{name: "single offer", offered: []string{"1.1"}, want: Version11},
		{name: "maximum wins regardless of order", offered: []string{"1.0", "1.2", "1.1"}, want: Version12},
		{name: "maximum may be unrecognized", offered: []string{"1.2", "2.0"}, want: Version(2.0)},
		{name: "one bad element fails the negotiation", offered: []string{"1.0", "latest"}, wantErr: true},
		{name: "empty element is not a descriptor", offered: []string{"1.2", ""}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NegotiateVersion(tc.offered)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsFormatError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// pure: a second pass over the same offer agrees
			again, err := NegotiateVersion(tc.offered)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.0", Version10.String())
	assert.Equal(t, "1.1", Version11.String())
	assert.Equal(t, "1.2", Version12.String())
}
