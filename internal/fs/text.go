package fs

import (
	"os"

	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies how a file's bytes were turned into UTF-8 text.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// ReadTextFile loads the whole file at path as text. BOM-marked UTF-8 and
// UTF-16 content is converted to plain UTF-8; anything else is returned as is.
// The reported Encoding is the conversion actually applied. The error is the
// one reported by os.ReadFile.
func ReadTextFile(path string) (string, Encoding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", EncodingUTF8, err
	}
	text, enc := decodeText(content)
	return text, enc, nil
}

func detectUnicodeEncoding(sample []byte) Encoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

// NormalizeTextContent returns content as UTF-8 text, dropping a UTF-8 BOM
// and transcoding BOM-marked UTF-16.
func NormalizeTextContent(content []byte) string {
	text, _ := decodeText(content)
	return text
}

// decodeText converts content to UTF-8. A UTF-16 payload the decoder rejects
// falls back to the raw bytes and is reported as EncodingUTF8.
func decodeText(content []byte) (string, Encoding) {
	enc := detectUnicodeEncoding(content)
	switch enc {
	case EncodingUTF8BOM:
		return string(content[3:]), enc
	case EncodingUTF16LE, EncodingUTF16BE:
		endian := unicode.LittleEndian
		if enc == EncodingUTF16BE {
			endian = unicode.BigEndian
		}
		decoded, err := utf16Decode(content, endian)
		if err != nil {
			return string(content), EncodingUTF8
		}
		return decoded, enc
	default:
		return string(content), EncodingUTF8
	}
}

var utf16Decode = func(content []byte, endian unicode.Endianness) (string, error) {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
