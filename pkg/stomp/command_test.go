package stomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCommandFor_BaseSet(t *testing.T) {
	base := []string{
		"CONNECTED", "MESSAGE", "RECEIPT", "ERROR", "CONNECT", "SEND",
		"SUBSCRIBE", "UNSUBSCRIBE", "BEGIN", "COMMIT", "ABORT", "ACK",
		"DISCONNECT",
	}

	for _, cmd := range base {
		assert.True(t, ValidCommandFor(cmd, Version10), "base command %s under 1.0", cmd)
		assert.True(t, ValidCommandFor(cmd, Version11), "base command %s under 1.1", cmd)
		assert.True(t, ValidCommandFor(cmd, Version12), "base command %s under 1.2", cmd)
	}
}

func TestValidCommandFor_ExtendedSet(t *testing.T) {
	tests := []struct {
		name    string
		command string
		version Version
		want    bool
	}{
		{name: "NACK rejected under 1.0", command: "NACK", version: Version10, want: false},
		{name: "STOMP rejected under 1.0", command: "STOMP", version: Version10, want: false},
		{name: "NACK accepted under 1.1", command: "NACK", version: Version11, want: true},
		{name: "STOMP accepted under 1.2", command: "STOMP", version: Version12, want: true},
		// unrecognized revisions widen to the 1.1+ set rather than reject
		{name: "NACK accepted under unknown 2.0", command: "NACK", version: Version(2.0), want: true},
		{name: "STOMP accepted under unknown 0.9", command: "STOMP", version: Version(0.9), want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidCommandFor(tc.command, tc.version))
		})
	}
}

func TestValidCommandFor_UnknownTokens(t *testing.T) {
	for _, version := range []Version{Version10, Version11, Version12, Version(2.0)} {
		assert.False(t, ValidCommandFor("PUBLISH", version))
		assert.False(t, ValidCommandFor("", version))
		// matching is case-sensitive, lowercase wire tokens are not commands
		assert.False(t, ValidCommandFor("send", version))
	}
}

func TestValidCommand_DefaultsToNewest(t *testing.T) {
	assert.True(t, ValidCommand("NACK"))
	assert.True(t, ValidCommand("SEND"))
	assert.False(t, ValidCommand("PUBLISH"))
}

func TestCommands(t *testing.T) {
	assert.Len(t, Commands(Version10), 13)
	assert.Len(t, Commands(Version12), 15)
	assert.NotContains(t, Commands(Version10), "NACK")
	assert.Contains(t, Commands(Version11), "NACK")
	assert.IsIncreasing(t, Commands(Version12))

	// pure: repeated calls agree
	assert.Equal(t, Commands(Version12), Commands(Version12))
}
