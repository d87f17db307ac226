package container

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// delimiterCandidates and encodingCandidates are tried in this order;
// DetectDialect scores every (delimiter, encoding) pair and returns the
// highest-scoring combination.
var delimiterCandidates = []byte{',', '\t', ';', '|'}

const (
	encUTF8        = "UTF-8"
	encISO88591    = "ISO-8859-1"
	encWindows1252 = "windows-1252"
	encUTF16       = "UTF-16"
	encUTF16LE     = "UTF-16LE"
	encUTF16BE     = "UTF-16BE"
	encASCII       = "ASCII"
)

var encodingCandidates = []string{
	encUTF8, encWindows1252, encISO88591, encUTF16, encUTF16LE, encUTF16BE, encASCII,
}

// Dialect is the detected delimiter/encoding pair for a CSV file.
type Dialect struct {
	Delimiter byte
	Encoding  string
}

// DetectDialect tries every (delimiter, encoding) combination in
// delimiterCandidates x encodingCandidates and returns the one whose
// decoded first few lines have the most consistent field count — the
// reference service's own brute-force CSV sniffing strategy, since Go's
// encoding/csv has no sniffer of its own.
func DetectDialect(data []byte) Dialect {
	if bom := detectBOM(data); bom != "" {
		return Dialect{Delimiter: bestDelimiter(data, bom), Encoding: bom}
	}

	best := Dialect{Delimiter: ',', Encoding: encUTF8}
	bestScore := -1

	for _, enc := range encodingCandidates {
		decoded, err := decode(data, enc)
		if err != nil {
			continue
		}
		for _, delim := range delimiterCandidates {
			score := dialectScore(decoded, delim)
			if score > bestScore {
				bestScore = score
				best = Dialect{Delimiter: delim, Encoding: enc}
			}
		}
	}
	return best
}

// detectBOM reports a definitive encoding from a byte-order-mark prefix,
// short-circuiting the brute-force scorer when one is present.
func detectBOM(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return encUTF8
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return encUTF16LE
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return encUTF16BE
	default:
		return ""
	}
}

func bestDelimiter(data []byte, enc string) byte {
	decoded, err := decode(data, enc)
	if err != nil {
		return ','
	}
	best := byte(',')
	bestScore := -1
	for _, delim := range delimiterCandidates {
		if score := dialectScore(decoded, delim); score > bestScore {
			bestScore = score
			best = delim
		}
	}
	return best
}

// dialectScore rewards a delimiter whose per-line field count is both
// greater than one and consistent across the first several lines — a
// delimiter that never appears, or that splits lines into wildly different
// field counts, scores low or negative.
func dialectScore(text string, delim byte) int {
	lines := strings.SplitN(text, "\n", 11)
	if len(lines) > 10 {
		lines = lines[:10]
	}
	counts := make([]int, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		counts = append(counts, strings.Count(line, string(delim))+1)
	}
	if len(counts) == 0 {
		return 0
	}

	first := counts[0]
	if first <= 1 {
		return 0
	}
	score := first
	for _, c := range counts[1:] {
		if c == first {
			score++
		} else {
			score--
		}
	}
	return score
}

// decode converts data from enc to a UTF-8 string, ASCII handled as a pure
// byte-identity decode since it is a strict subset of UTF-8.
func decode(data []byte, enc string) (string, error) {
	var e encoding.Encoding
	switch enc {
	case encUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("container: not valid UTF-8")
		}
		return string(data), nil
	case encASCII:
		for _, b := range data {
			if b > 0x7F {
				return "", fmt.Errorf("container: not valid ASCII")
			}
		}
		return string(data), nil
	case encISO88591:
		e = charmap.ISO8859_1
	case encWindows1252:
		e = charmap.Windows1252
	case encUTF16, encUTF16LE:
		e = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case encUTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return "", fmt.Errorf("container: unknown encoding %q", enc)
	}

	decoded, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
