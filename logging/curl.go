package logging

import (
	"net/url"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

// CurlCommand renders an HTTP request as an equivalent curl command line, with every argument
// shell-quoted, so that a failing request from a debug log can be replayed by hand.
func CurlCommand(method, requestURL string, headers map[string]string, body *string) string {
	var b commandBuilder
	b.add("curl", "-X", method)
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.add("-H", k+": "+headers[k])
	}
	if body != nil {
		b.add("--data-raw", *body)
	}
	b.add(requestURL)
	return b.String()
}

// URLWithParams appends encoded query parameters to a URL for display purposes.
func URLWithParams(requestURL string, params url.Values) string {
	if len(params) == 0 {
		return requestURL
	}
	sep := "?"
	if strings.Contains(requestURL, "?") {
		sep = "&"
	}
	return requestURL + sep + params.Encode()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
