package stomp

import "sort"

// Frame command tokens. The base set is valid from protocol 1.0 onward;
// STOMP and NACK were introduced in 1.1.
const (
	CmdConnected   = "CONNECTED"
	CmdMessage     = "MESSAGE"
	CmdReceipt     = "RECEIPT"
	CmdError       = "ERROR"
	CmdConnect     = "CONNECT"
	CmdSend        = "SEND"
	CmdSubscribe   = "SUBSCRIBE"
	CmdUnsubscribe = "UNSUBSCRIBE"
	CmdBegin       = "BEGIN"
	CmdCommit      = "COMMIT"
	CmdAbort       = "ABORT"
	CmdAck         = "ACK"
	CmdDisconnect  = "DISCONNECT"
	CmdStomp       = "STOMP"
	CmdNack        = "NACK"
)

var baseCommands = map[string]struct{}{
	CmdConnected:   {},
	CmdMessage:     {},
	CmdReceipt:     {},
	CmdError:       {},
	CmdConnect:     {},
	CmdSend:        {},
	CmdSubscribe:   {},
	CmdUnsubscribe: {},
	CmdBegin:       {},
	CmdCommit:      {},
	CmdAbort:       {},
	CmdAck:         {},
	CmdDisconnect:  {},
}

var extendedCommands = map[string]struct{}{
	CmdStomp: {},
	CmdNack:  {},
}

// ValidCommand reports whether command is a valid frame command under
// NewestVersion. Matching is exact and case-sensitive.
func ValidCommand(command string) bool {
	return ValidCommandFor(command, NewestVersion)
}

// ValidCommandFor reports whether command is a valid frame command for the
// given protocol revision. Revision 1.0 accepts the base set only; every
// other value, unrecognized revisions included, also accepts the 1.1+ set.
func ValidCommandFor(command string, version Version) bool {
	if _, ok := baseCommands[command]; ok {
		return true
	}
	if version == Version10 {
		return false
	}
	_, ok := extendedCommands[command]
	return ok
}

// Commands returns the sorted set of frame commands the given revision
// accepts.
func Commands(version Version) []string {
	out := make([]string, 0, len(baseCommands)+len(extendedCommands))
	for c := range baseCommands {
		out = append(out, c)
	}
	if version != Version10 {
		for c := range extendedCommands {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
