package wiird

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/GamendeMier/brawllib/internal/utils"
)

// LoadGCT reads a binary .gct codeset file and decodes it. The 8 byte
// magic header is discarded without validation.
func LoadGCT(path string) (Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Block{}, &utils.CodesetError{Path: path, Cause: err}
	}
	if len(data) < 8 {
		return Block{}, fmt.Errorf("not a WiiRD gct codeset file %q: file size is less than 8 bytes", path)
	}
	return Codes(data[8:]), nil
}

// LoadTxt reads a text codeset file and decodes it. Each line starting
// with '*' holds one code as 16 hex digits (spaces allowed); every other
// line is commentary and ignored.
func LoadTxt(path string) (Block, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Block{}, &utils.CodesetError{Path: path, Cause: err}
	}
	if !utf8.Valid(raw) {
		return Block{}, fmt.Errorf("failed to read WiiRD codeset %q: please reencode the file as utf8", path)
	}

	var data []byte
	for _, line := range strings.Split(string(raw), "\n") {
		if !strings.HasPrefix(line, "*") {
			continue
		}
		hexString := strings.ReplaceAll(line, "*", "")
		hexString = strings.ReplaceAll(hexString, " ", "")
		hexString = strings.TrimSuffix(hexString, "\r")

		if strings.ContainsFunc(hexString, func(r rune) bool { return !isHexDigit(r) }) {
			return Block{}, fmt.Errorf("text codeset %q contains a non-hex character in a code", path)
		}
		if len(hexString) > 16 {
			return Block{}, fmt.Errorf("text codeset %q contains a code that has more than 16 digits", path)
		}
		if len(hexString) < 16 {
			return Block{}, fmt.Errorf("text codeset %q contains a code that has less than 16 digits", path)
		}
		code, err := hex.DecodeString(hexString)
		if err != nil {
			return Block{}, fmt.Errorf("text codeset %q contains a non-hex character in a code", path)
		}
		data = append(data, code...)
	}

	return Codes(data), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
