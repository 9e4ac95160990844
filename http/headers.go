package http

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/langex"
	"golang.org/x/net/http/httpguts"
)

// ParseHeaders reads newline-delimited "Key: Value" pairs.
// Lines are split at the first colon; keys and values are trimmed.
// A line without a colon, or with a key or value that is not a legal HTTP
// header field, is an EINVALID error for the whole input.
func ParseHeaders(r io.Reader) (langex.Headers, error) {
	headers := langex.Headers{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		key, value, ok := strings.Cut(text, ":")
		if !ok {
			return nil, langex.Errorf(langex.EINVALID, "failed to parse headers file: line %d: %q", line, text)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !httpguts.ValidHeaderFieldName(key) {
			return nil, langex.Errorf(langex.EINVALID, "failed to parse headers file: line %d: invalid header name %q", line, key)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, langex.Errorf(langex.EINVALID, "failed to parse headers file: line %d: invalid value for %q", line, key)
		}
		headers[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return headers, nil
}

// LoadHeaders parses the headers file at path.
func LoadHeaders(path string) (langex.Headers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseHeaders(f)
}
