package container

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDetectDialect_CommaUTF8(t *testing.T) {
	data := []byte("name,age,city\nAlice,30,Boston\nBob,41,Seattle\n")
	d := DetectDialect(data)
	if d.Delimiter != ',' {
		t.Errorf("expected comma delimiter, got %q", d.Delimiter)
	}
	if d.Encoding != encUTF8 {
		t.Errorf("expected UTF-8, got %s", d.Encoding)
	}
}

func TestDetectDialect_Semicolon(t *testing.T) {
	data := []byte("name;age;city\nAlice;30;Boston\nBob;41;Seattle\n")
	d := DetectDialect(data)
	if d.Delimiter != ';' {
		t.Errorf("expected semicolon delimiter, got %q", d.Delimiter)
	}
}

func TestDetectDialect_Tab(t *testing.T) {
	data := []byte("name\tage\tcity\nAlice\t30\tBoston\nBob\t41\tSeattle\n")
	d := DetectDialect(data)
	if d.Delimiter != '\t' {
		t.Errorf("expected tab delimiter, got %q", d.Delimiter)
	}
}

func TestDetectDialect_UTF16LEBOM(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	encoded, err := enc.NewEncoder().Bytes([]byte("name,age\nAlice,30\n"))
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	d := DetectDialect(encoded)
	if d.Encoding != encUTF16LE {
		t.Errorf("expected UTF-16LE, got %s", d.Encoding)
	}
}

func TestDetectDialect_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte("name,city\nJos\xe9,Par\xe9\n"))
	if err == nil {
		d := DetectDialect(raw)
		if d.Delimiter != ',' {
			t.Errorf("expected comma delimiter despite non-UTF-8 bytes, got %q", d.Delimiter)
		}
	}
}

func TestDecode_InvalidUTF8Fails(t *testing.T) {
	if _, err := decode([]byte{0xff, 0xfe, 0x00, 0x41}, encUTF8); err == nil {
		t.Error("expected invalid UTF-8 bytes to fail UTF-8 decode")
	}
}
