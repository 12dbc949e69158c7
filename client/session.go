package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
)

// Public token the web client ships to every browser; not a secret.
const webBearerToken = "AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA"

// The API refuses sessions presenting a non-browser agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// session is an authenticated browser session reconstructed from an exported
// cookies file. auth_token carries the login; ct0 doubles as the CSRF token.
type session struct {
	cookieHeader string
	csrf         string
}

func loadSession(cookiesFile string) (*session, error) {
	if cookiesFile == "" {
		return nil, fmt.Errorf("no cookies file configured")
	}
	data, err := os.ReadFile(cookiesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies file: %w", err)
	}
	cookies, err := ParseCookies(data)
	if err != nil {
		return nil, err
	}
	return newSession(cookies)
}

func newSession(cookies map[string]string) (*session, error) {
	if cookies["auth_token"] == "" {
		return nil, fmt.Errorf("cookies are missing auth_token; export them while logged in")
	}
	if cookies["ct0"] == "" {
		return nil, fmt.Errorf("cookies are missing ct0")
	}
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, name := range names {
		if sb.Len() != 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(name)
		sb.WriteString("=")
		sb.WriteString(cookies[name])
	}
	return &session{cookieHeader: sb.String(), csrf: cookies["ct0"]}, nil
}

func (s *session) decorate(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+webBearerToken)
	req.Header.Set("Cookie", s.cookieHeader)
	req.Header.Set("X-Csrf-Token", s.csrf)
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("X-Twitter-Auth-Type", "OAuth2Session")
	req.Header.Set("X-Twitter-Active-User", "yes")
	req.Header.Set("X-Twitter-Client-Language", "en")
}

// ParseCookies accepts the three formats people actually export: a flat JSON
// object of name to value, a browser extension's JSON array of cookie records,
// or a Netscape cookies.txt.
func ParseCookies(data []byte) (map[string]string, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("cookies file is empty")
	}
	switch trimmed[0] {
	case '{':
		var dict map[string]string
		if err := json.Unmarshal([]byte(trimmed), &dict); err != nil {
			return nil, fmt.Errorf("failed to parse cookies JSON: %w", err)
		}
		return dict, nil
	case '[':
		var records []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		}
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return nil, fmt.Errorf("failed to parse cookies JSON: %w", err)
		}
		res := make(map[string]string, len(records))
		for _, rec := range records {
			if rec.Name != "" {
				res[rec.Name] = rec.Value
			}
		}
		return res, nil
	default:
		return parseNetscapeCookies(trimmed)
	}
}

func parseNetscapeCookies(text string) (map[string]string, error) {
	res := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		// curl marks HttpOnly cookies with a prefix on the comment char
		line = strings.TrimPrefix(line, "#HttpOnly_")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}
		res[fields[5]] = fields[6]
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no cookies recognized; expected JSON or Netscape format")
	}
	return res, nil
}
