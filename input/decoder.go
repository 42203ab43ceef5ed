package input

// Decoder turns a raw tty byte stream into key events against a
// BindingTable. It holds no state between calls to Decode: every byte
// slice passed in is decoded to completion on its own (spec §9 "the
// decoder never buffers a partial escape sequence across calls"), so a
// sequence split across two reads from the tty is not reassembled.
type Decoder struct {
	table *BindingTable
}

// NewDecoder returns a Decoder that resolves escape sequences against table.
func NewDecoder(table *BindingTable) *Decoder {
	return &Decoder{table: table}
}

// Decode consumes buf and returns the key events it contains, in order.
// Bytes that do not form a recognized event (an unbound CSI sequence, a
// stray UTF-8 continuation byte) are silently dropped.
func (d *Decoder) Decode(buf []byte) []KeyEvent {
	var events []KeyEvent
	for len(buf) > 0 {
		ev, n, ok := d.decodeOne(buf)
		if n <= 0 {
			n = 1
		}
		if ok {
			events = append(events, ev)
		}
		buf = buf[n:]
	}
	return events
}

func (d *Decoder) decodeOne(buf []byte) (ev KeyEvent, consumed int, ok bool) {
	b0 := buf[0]

	if b0 == 0x1B {
		return d.decodeEscape(buf)
	}

	if b0 == 0x09 {
		return KeyEvent{Code: KeyTab, Type: EventPress}, 1, true
	}
	if b0 == 0x0D {
		return KeyEvent{Code: KeyEnter, Type: EventPress}, 1, true
	}
	if b0 == 0x7F {
		return KeyEvent{Code: KeyBackspace, Type: EventPress}, 1, true
	}
	if isControlByte(b0) {
		return KeyEvent{Code: KeyCode(b0 ^ 0x40), Modifiers: ModCtrl, Type: EventPress}, 1, true
	}

	r, size, runeOK := DecodeRune(buf)
	if !runeOK {
		return KeyEvent{}, 1, false
	}
	return KeyEvent{Code: KeyCode(r), Type: EventPress}, size, true
}

// isControlByte reports whether b is an ASCII control byte handled by the
// generic Ctrl+letter caret-notation mapping (b XOR 0x40), i.e. every
// control byte except tab, carriage return, escape, and delete, which
// have their own named keys.
func isControlByte(b byte) bool {
	if b >= 0x20 {
		return false
	}
	switch b {
	case 0x09, 0x0D, 0x1B:
		return false
	default:
		return true
	}
}

// decodeEscape handles every sequence beginning with ESC: CSI (ESC [),
// SS3 function keys (ESC O P/Q/R/S), and the ESC+char Alt-modifier
// convention used when nothing more specific matches. A CSI or SS3
// introducer that parses but doesn't match any bound key is swallowed
// (no event, bytes still consumed) rather than falling back to the
// Alt-rune decoding that's reserved for an introducer byte that isn't
// '[' or 'O' at all, or a malformed CSI that failed to parse.
func (d *Decoder) decodeEscape(buf []byte) (ev KeyEvent, consumed int, ok bool) {
	if len(buf) == 1 {
		return KeyEvent{Code: KeyEscape, Type: EventPress}, 1, true
	}

	switch buf[1] {
	case '[':
		cmd, n, parsed := ParseCSI(buf)
		if !parsed {
			return d.decodeAltRune(buf)
		}
		// CSI Z (back-tab) is a fixed sequence, not a parameterized
		// variant of a cursor key, so it is recognized directly rather
		// than through the generic modifier-parameter binding table.
		if cmd.Final == 'Z' && len(cmd.Parameters) == 0 {
			return KeyEvent{Code: KeyTab, Modifiers: ModShift, Type: EventPress}, n, true
		}
		code, matched := d.table.Match(cmd)
		if !matched {
			return KeyEvent{}, n, false
		}
		mods := ModNone
		if field, present := cmd.secondParamField(); present {
			if m, ok := fromXtermParam(field); ok {
				mods = m
			}
		}
		return KeyEvent{Code: code, Modifiers: mods, Type: EventPress}, n, true

	case 'O':
		if len(buf) < 3 {
			return KeyEvent{}, 2, false
		}
		code, matched := d.table.Match(CSICommand{Final: buf[2]})
		if !matched {
			return KeyEvent{}, 3, false
		}
		return KeyEvent{Code: code, Type: EventPress}, 3, true

	default:
		return d.decodeAltRune(buf)
	}
}

// decodeAltRune implements the ESC+char convention: the rune following
// ESC is reported with the Alt modifier set, e.g. "ESC a" decodes to
// 'a'+Alt.
func (d *Decoder) decodeAltRune(buf []byte) (ev KeyEvent, consumed int, ok bool) {
	r, size, runeOK := DecodeRune(buf[1:])
	if !runeOK {
		return KeyEvent{Code: KeyEscape, Type: EventPress}, 1, true
	}
	return KeyEvent{Code: KeyCode(r), Modifiers: ModAlt, Type: EventPress}, 1 + size, true
}

// DecodeRune decodes a single UTF-8 scalar from the start of buf,
// classifying the lead byte per the standard UTF-8 byte-length ranges:
//
//	0x00-0x7F          1 byte  (ASCII)
//	0xC2-0xDF          2 bytes
//	0xE0-0xEF          3 bytes
//	0xF0-0xF4          4 bytes
//
// 0x80-0xBF (a bare continuation byte), 0xC0-0xC1 (overlong two-byte
// lead), and 0xF5-0xFF are never valid lead bytes and decode with
// ok=false, consuming nothing so the caller can drop exactly one byte
// and resynchronize. A multi-byte sequence missing or with malformed
// continuation bytes likewise reports ok=false.
func DecodeRune(buf []byte) (r rune, size int, ok bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}
	b0 := buf[0]

	switch {
	case b0 < 0x80:
		return rune(b0), 1, true

	case b0 >= 0xC2 && b0 <= 0xDF:
		if len(buf) < 2 || !isContinuation(buf[1]) {
			return 0, 0, false
		}
		return rune(b0&0x1F)<<6 | rune(buf[1]&0x3F), 2, true

	case b0 >= 0xE0 && b0 <= 0xEF:
		if len(buf) < 3 || !isContinuation(buf[1]) || !isContinuation(buf[2]) {
			return 0, 0, false
		}
		return rune(b0&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F), 3, true

	case b0 >= 0xF0 && b0 <= 0xF4:
		if len(buf) < 4 || !isContinuation(buf[1]) || !isContinuation(buf[2]) || !isContinuation(buf[3]) {
			return 0, 0, false
		}
		return rune(b0&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F), 4, true

	default:
		return 0, 0, false
	}
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
