package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}

	Commit = "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("Short() = %q, want abc123", got)
	}

	Version = "v1.2.0"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short() = %q, want v1.2.0", got)
	}
}
