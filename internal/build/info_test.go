package build

import "testing"

func TestString(t *testing.T) {
	Version, Commit, Branch = "v1.2.3", "abc123", "main"
	t.Cleanup(func() { Version, Commit, Branch = "dev", "unknown", "unknown" })

	want := "v1.2.3 (commit abc123, branch main)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
