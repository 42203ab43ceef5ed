package input

import "bytes"

// CSICommand is a parsed Control Sequence Introducer command: parameter
// bytes (0x30-0x3F), intermediate bytes (0x20-0x2F), and a single final
// byte (0x40-0x7E).
type CSICommand struct {
	Parameters    []byte
	Intermediates []byte
	Final         byte
}

// ParseCSI parses a CSI command from buf, which may either start with the
// "ESC [" introducer or begin directly with the parameter bytes (both
// forms are accepted; the returned consumed length reflects whichever form
// was seen, per spec §4.D "The parser also accepts raw CSI without the
// ESC [ prefix").
//
// Returns the parsed command and the number of bytes of buf consumed, or
// ok=false if the sequence is malformed (a byte outside the
// parameter/intermediate/final ranges appears before a final byte is
// found, or no final byte is ever found).
func ParseCSI(buf []byte) (cmd CSICommand, consumed int, ok bool) {
	skippedPrefix := false
	rest := buf
	if len(buf) >= 2 && buf[0] == 0x1B && buf[1] == '[' {
		skippedPrefix = true
		rest = buf[2:]
	}

	inIntermediate := false
	paramEnd := 0
	interEnd := 0
	var final byte

	for _, b := range rest {
		if !inIntermediate {
			switch {
			case b >= 0x20 && b <= 0x2F:
				inIntermediate = true
				interEnd = paramEnd + 1
				continue
			case b >= 0x40 && b <= 0x7E:
				interEnd = paramEnd
				final = b
			case b >= 0x30 && b <= 0x3F:
				paramEnd++
				continue
			default:
				return CSICommand{}, 0, false
			}
		} else {
			switch {
			case b >= 0x40 && b <= 0x7E:
				final = b
			case b >= 0x20 && b <= 0x2F:
				interEnd++
				continue
			default:
				return CSICommand{}, 0, false
			}
		}
		break
	}

	if final == 0 {
		return CSICommand{}, 0, false
	}

	cmd = CSICommand{
		Parameters:    append([]byte(nil), rest[0:paramEnd]...),
		Intermediates: append([]byte(nil), rest[paramEnd:interEnd]...),
		Final:         final,
	}
	consumed = interEnd + 1
	if skippedPrefix {
		consumed += 2
	}
	return cmd, consumed, true
}

// matches reports whether cmd matches a bound CSICommand using the two
// rules of spec §4.D "CSI matching against the binding table":
//
//   - If cmd's final byte is in 'A'..'Z' (non-'~'): match on final byte
//     equality alone; parameter bytes are ignored (they carry modifier
//     info instead).
//   - If cmd's final byte is '~': match on (final == '~') AND (the first
//     semicolon-separated segment of cmd's parameter bytes equals bound's
//     parameter bytes).
//   - Any other final byte never matches.
func (cmd CSICommand) matches(bound CSICommand) bool {
	switch {
	case cmd.Final >= 'A' && cmd.Final <= 'Z':
		return cmd.Final == bound.Final
	case cmd.Final == '~':
		if bound.Final != '~' {
			return false
		}
		first := cmd.Parameters
		if idx := bytes.IndexByte(cmd.Parameters, ';'); idx >= 0 {
			first = cmd.Parameters[:idx]
		}
		return string(first) == string(bound.Parameters)
	default:
		return false
	}
}

// secondParamField returns the second semicolon-separated segment of the
// command's parameter bytes, used for xterm modifier decoding, and whether
// one is present.
func (cmd CSICommand) secondParamField() ([]byte, bool) {
	idx := bytes.IndexByte(cmd.Parameters, ';')
	if idx < 0 {
		return nil, false
	}
	rest := cmd.Parameters[idx+1:]
	if end := bytes.IndexByte(rest, ';'); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}
