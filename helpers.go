package newpost

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ToTitle converts a hyphenated slug to a title-case string.
// e.g. "my-first-post" -> "My First Post", "hello--world" -> "Hello  World"
//
// Only the first rune of each word is changed. Empty words produced by
// leading, trailing or doubled hyphens are kept, so the result always has
// one space per hyphen.
func ToTitle(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		parts[i] = cases.Upper(language.Und).String(string(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

// CanonicalURL returns the absolute URL of a post: <base>/posts/<slug>.
func CanonicalURL(base, slug string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(base, "/") + "/posts/" + slug
	}
	u.Path = path.Join("/", u.Path, "posts", slug)
	u.RawPath = ""
	return u.String()
}

// ValidateSlug reports whether slug can be used as a single directory name.
func ValidateSlug(slug string) error {
	switch {
	case slug == "", slug == ".", slug == "..":
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	case strings.ContainsAny(slug, "/\\\x00"):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidSlug, slug)
	}
	return nil
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
