package entity

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// MaxURLLength is the longest URL accepted for storage.
const MaxURLLength = 2083

var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
}

// NormalizeURL validates input as an absolute http or https URL and returns its
// canonical string form. The scheme and host are lower-cased, a default port is
// dropped and an empty path becomes "/", so "https://testdriven.io" is stored as
// "https://testdriven.io/".
//
// loc is used to locate the returned FieldError, e.g. ("body", "url").
func NormalizeURL(input any, loc ...any) (string, *FieldError) {
	raw, ok := input.(string)
	if !ok {
		return "", &FieldError{Type: ErrTypeURLType, Loc: loc, Msg: "URL input should be a string or URL", Input: input}
	}

	// DoS protection: enforce maximum URL length
	if len(raw) > MaxURLLength {
		return "", &FieldError{
			Type:  ErrTypeURLTooLong,
			Loc:   loc,
			Msg:   fmt.Sprintf("URL should have at most %d characters", MaxURLLength),
			Input: input,
			Ctx:   map[string]any{"max_length": MaxURLLength},
		}
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", urlParsing(input, "input is empty", loc)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", urlParsing(input, parseReason(err), loc)
	}
	if u.Scheme == "" {
		return "", urlParsing(input, "relative URL without a base", loc)
	}

	// HTTPまたはHTTPSスキームのみ許可
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &FieldError{
			Type:  ErrTypeURLScheme,
			Loc:   loc,
			Msg:   "URL scheme should be 'http' or 'https'",
			Input: input,
			Ctx:   map[string]any{"expected_schemes": "'http' or 'https'"},
		}
	}

	if u.Opaque != "" || u.Hostname() == "" {
		return "", urlParsing(input, "empty host", loc)
	}

	hostname := strings.ToLower(u.Hostname())
	if !isASCII(hostname) {
		// 国際化ドメイン名は punycode で保存する
		ascii, err := idna.Lookup.ToASCII(hostname)
		if err != nil {
			return "", urlParsing(input, "invalid international domain name", loc)
		}
		hostname = ascii
	}
	host := hostname
	if strings.Contains(hostname, ":") {
		host = "[" + hostname + "]"
	}
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return "", urlParsing(input, "invalid port number", loc)
		}
		if n != defaultPorts[u.Scheme] {
			host = net.JoinHostPort(hostname, strconv.Itoa(n))
		}
	}
	u.Host = host

	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	return u.String(), nil
}

// CanonicalURL is NormalizeURL for values that are already known to be strings,
// such as URLs read back from storage.
func CanonicalURL(raw string) (string, error) {
	out, fe := NormalizeURL(raw, "url")
	if fe != nil {
		return "", &ValidationError{Errors: []FieldError{*fe}}
	}
	return out, nil
}

// ValidateID checks a path identifier. raw is the unparsed path segment.
func ValidateID(raw string, loc ...any) (int64, *FieldError) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &FieldError{
			Type:  ErrTypeIntParsing,
			Loc:   loc,
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw,
		}
	}
	if id <= 0 {
		return 0, &FieldError{
			Type:  ErrTypeGreaterThan,
			Loc:   loc,
			Msg:   "Input should be greater than 0",
			Input: raw,
			Ctx:   map[string]any{"gt": 0},
		}
	}
	return id, nil
}

func urlParsing(input any, reason string, loc []any) *FieldError {
	return &FieldError{
		Type:  ErrTypeURLParsing,
		Loc:   loc,
		Msg:   "Input should be a valid URL, " + reason,
		Input: input,
		Ctx:   map[string]any{"error": reason},
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// parseReason strips the net/url prefix ("parse \"...\": ") from a parse error.
func parseReason(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err.Error()
	}
	return err.Error()
}
