package domain

import (
	"net/url"
	"strings"
)

// LocalPath reports whether a source locator refers to the local filesystem
// and returns the path to open. Locators without a scheme and file:// URLs are local.
func LocalPath(locator string) (string, bool) {
	if !strings.Contains(locator, "://") {
		return locator, true
	}
	u, err := url.Parse(locator)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", false
	}
	return u.Path, true
}
