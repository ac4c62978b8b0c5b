package sigint

import (
	"net/url"
	"strings"
)

// Source is one configured feed or page.
type Source struct {
	URL  string
	Name string
}

func (s Source) label() string {
	if s.Name != "" {
		return s.Name
	}
	return sourceName(s.URL)
}

// sourceName derives "Bbc" from "https://feeds.bbc.co.uk/news/rss.xml".
func sourceName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "feeds.", "rss.", "news."} {
		host = strings.TrimPrefix(host, prefix)
	}
	name := strings.Split(host, ".")[0]
	if name == "" {
		return raw
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
