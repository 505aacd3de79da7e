package newpost

import (
	"errors"
	"testing"
)

func TestToTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add-post", "Add Post"},
		{"my-first-post", "My First Post"},
		{"hello", "Hello"},
		{"go-1-22-release", "Go 1 22 Release"},
		{"already-Capped", "Already Capped"},
		{"keep-the-rEST", "Keep The REST"},
		{"", ""},
	}
	for _, tt := range tests {
		got := ToTitle(tt.input)
		if got != tt.expected {
			t.Errorf("ToTitle(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToTitleKeepsEmptyWords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello--world", "Hello  World"},
		{"-hello", " Hello"},
		{"hello-", "Hello "},
		{"---", "   "},
	}
	for _, tt := range tests {
		got := ToTitle(tt.input)
		if got != tt.expected {
			t.Errorf("ToTitle(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToTitleUnicode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"über-alles", "Über Alles"},
		{"ölçü-birimi", "Ölçü Birimi"},
		{"ßtraße", "SStraße"},
		{"日本-post", "日本 Post"},
	}
	for _, tt := range tests {
		got := ToTitle(tt.input)
		if got != tt.expected {
			t.Errorf("ToTitle(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		base     string
		slug     string
		expected string
	}{
		{"https://example.com", "foo-bar", "https://example.com/posts/foo-bar"},
		{"https://example.com/", "foo-bar", "https://example.com/posts/foo-bar"},
		{"https://example.com/blog", "foo-bar", "https://example.com/blog/posts/foo-bar"},
		{"http://localhost:3000", "hello", "http://localhost:3000/posts/hello"},
		{"example.com/", "hello", "example.com/posts/hello"},
	}
	for _, tt := range tests {
		got := CanonicalURL(tt.base, tt.slug)
		if got != tt.expected {
			t.Errorf("CanonicalURL(%q, %q) = %q, want %q", tt.base, tt.slug, got, tt.expected)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"foo-bar", "hello", "Not-Normalized", "hello--world", "2026-recap"}
	for _, s := range valid {
		if err := ValidateSlug(s); err != nil {
			t.Errorf("ValidateSlug(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", ".", "..", "a/b", `a\b`, "../escape", "nul\x00byte"}
	for _, s := range invalid {
		err := ValidateSlug(s)
		if !errors.Is(err, ErrInvalidSlug) {
			t.Errorf("ValidateSlug(%q) = %v, want ErrInvalidSlug", s, err)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Go Generics, Explained!  ", "go-generics-explained"},
		{"my-first-post", "my-first-post"},
		{"hello--world", "hello-world"},
	}
	for _, tt := range tests {
		got := Slugify(tt.input)
		if got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"go", " ", "", " web "})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("FilterEmpty = %v, want [go web]", got)
	}
}
