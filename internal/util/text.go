package util

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// typographic marks pasted from editors, mapped to the plain forms the
// analyzer's patterns and cliché list are written with.
var charReplacer = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201C", "\"", "\u201D", "\"",
	"\u2013", "-", "\u2014", "--", "\u2026", "...", "\u00a0", " ",
)

// CleanText strips a BOM, repairs invalid UTF-8 and flattens typographic
// punctuation. src names the input in log messages.
func CleanText(raw []byte, src string) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		log.WithField("src", src).Warn("Invalid UTF-8, replacing invalid chars")
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}
	return strings.TrimSpace(charReplacer.Replace(string(raw)))
}

// ReadTextFile reads and cleans a draft from path. Files containing NUL bytes
// are rejected as binary.
func ReadTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if bytes.IndexByte(raw, 0) >= 0 {
		return "", fmt.Errorf("%s looks like a binary file", path)
	}
	return CleanText(raw, path), nil
}
