// SPDX-License-Identifier: Apache-2.0

package toolchains

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/joomcode/errorx"
)

// propertiesDateLayout matches the timestamp comment of java.util.Properties#store.
const propertiesDateLayout = "Mon Jan 02 15:04:05 MST 2006"

const upperHex = "0123456789ABCDEF"

// now is replaced by tests to get a stable timestamp line.
var now = time.Now

func encodeProperties(nt NodeToolchains) []byte {
	var buf bytes.Buffer
	buf.WriteString("#" + PropertiesHeader + "\n")
	buf.WriteString("#" + now().Format(propertiesDateLayout) + "\n")
	for _, e := range nt.Entries {
		buf.WriteString(escapeProperty(e.JDKName, true))
		buf.WriteByte('=')
		buf.WriteString(escapeProperty(e.Home, false))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// escapeProperty escapes s the way java.util.Properties stores keys and values:
// backslash, separators and comment characters are escaped, leading spaces (all
// spaces for keys) become "\ ", and characters outside printable ASCII are
// written as \uXXXX UTF-16 code units.
func escapeProperty(s string, isKey bool) string {
	var sb strings.Builder
	for i, r := range []rune(s) {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case ' ':
			if i == 0 || isKey {
				sb.WriteString(`\ `)
			} else {
				sb.WriteByte(' ')
			}
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\f':
			sb.WriteString(`\f`)
		case '=', ':', '#', '!':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			if r < 0x20 || r > 0x7e {
				for _, unit := range utf16.Encode([]rune{r}) {
					sb.WriteString(`\u`)
					sb.WriteByte(upperHex[(unit>>12)&0xF])
					sb.WriteByte(upperHex[(unit>>8)&0xF])
					sb.WriteByte(upperHex[(unit>>4)&0xF])
					sb.WriteByte(upperHex[unit&0xF])
				}
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// decodeProperties parses the subset of the properties syntax produced by
// encodeProperties plus line continuations. Entry order is preserved.
func decodeProperties(data []byte) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	var pending string
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if pending == "" {
			line = strings.TrimLeft(line, " \t\f")
			if line == "" || line[0] == '#' || line[0] == '!' {
				continue
			}
		} else {
			line = pending + strings.TrimLeft(line, " \t\f")
			pending = ""
		}

		if continues(line) {
			pending = line[:len(line)-1]
			continue
		}

		key, value, err := splitProperty(line)
		if err != nil {
			return nil, errorx.Decorate(err, "line %d", lineNo)
		}
		entries = append(entries, Entry{JDKName: key, Home: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if pending != "" {
		key, value, err := splitProperty(pending)
		if err != nil {
			return nil, errorx.Decorate(err, "line %d", lineNo)
		}
		entries = append(entries, Entry{JDKName: key, Home: value})
	}
	return entries, nil
}

// continues reports whether line ends with an odd number of backslashes.
func continues(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func splitProperty(line string) (string, string, error) {
	sep := len(line)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f' {
			sep = i
			break
		}
	}

	rawKey := line[:sep]
	rest := line[sep:]
	rest = strings.TrimLeft(rest, " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}

	key, err := unescapeProperty(rawKey)
	if err != nil {
		return "", "", err
	}
	value, err := unescapeProperty(rest)
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

func unescapeProperty(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var units []uint16
	var sb strings.Builder
	flush := func() {
		if len(units) > 0 {
			sb.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			flush()
			sb.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 't':
			flush()
			sb.WriteByte('\t')
		case 'n':
			flush()
			sb.WriteByte('\n')
		case 'r':
			flush()
			sb.WriteByte('\r')
		case 'f':
			flush()
			sb.WriteByte('\f')
		case 'u':
			if i+5 > len(s) {
				return "", errorx.IllegalFormat.New("malformed \\uXXXX encoding in %q", s)
			}
			v, err := strconv.ParseUint(s[i+1:i+5], 16, 16)
			if err != nil {
				return "", errorx.IllegalFormat.Wrap(err, "malformed \\uXXXX encoding in %q", s)
			}
			units = append(units, uint16(v))
			i += 4
		default:
			flush()
			sb.WriteByte(s[i])
		}
	}
	flush()
	return sb.String(), nil
}
