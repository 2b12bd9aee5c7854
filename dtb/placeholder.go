package dtb

import (
	"strconv"
	"strings"
)

// ResolvePlaceholder maps a placeholder token string to the byte length its
// property expands to on the wire. The string is a comma-separated token
// list; empty tokens are skipped and the first matching token decides:
//
//   - "macaddr/<source>" reserves the 6 bytes of a MAC address.
//   - "syscfg/XXXX/NNN" reserves NNN bytes for a four-character syscfg key.
//     A token without the second slash, or with NNN parsing to zero, is
//     skipped and scanning continues.
//   - "zeroes/NNN" reserves NNN bytes, even when NNN is zero.
//
// NNN is decimal or 0x-prefixed hexadecimal; parsing stops at the first
// byte past the number. A result of zero (no token matched, or a matched
// zero count) means the property is dropped from the emitted output.
func ResolvePlaceholder(tokens string) uint32 {
	for _, token := range strings.Split(tokens, ",") {
		if token == "" {
			continue
		}

		if strings.HasPrefix(token, "macaddr/") {
			return 6
		}

		if strings.HasPrefix(token, "syscfg/") {
			if len(token) < 12 || token[11] != '/' {
				continue
			}
			length := parseLength(token[12:])
			if length == 0 {
				continue
			}
			return length
		}

		if strings.HasPrefix(token, "zeroes/") {
			return parseLength(token[len("zeroes/"):])
		}
	}

	return 0
}

// parseLength parses the leading unsigned number of s, decimal or
// 0x-prefixed hexadecimal, ignoring anything after it. Returns 0 when s has
// no leading number.
func parseLength(s string) uint32 {
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0
	}

	v, err := strconv.ParseUint(s[:end], base, 64)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func isDigit(c byte, base int) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if base != 16 {
		return false
	}
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// resolvedLength returns the emission length of p: the payload length for a
// regular property, or the resolved placeholder length. Zero for a
// placeholder means "drop".
func resolvedLength(p *Prop) (length int, drop bool) {
	if !p.Placeholder {
		return len(p.Data), false
	}
	resolved := ResolvePlaceholder(string(p.Data))
	if resolved == 0 {
		return 0, true
	}
	return int(resolved), false
}
