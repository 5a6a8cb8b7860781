package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	t.Cleanup(func() { Commit, Date = origCommit, origDate })

	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{name: "dev build", commit: "unknown", date: "unknown", want: "hueforge version dev ("},
		{name: "release build", commit: "0123456789abcdef", date: "2026-01-02T03:04:05Z", want: "commit: 01234567,"},
		{name: "short commit", commit: "abc", date: "2026-01-02T03:04:05Z", want: "commit: abc,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, Date = tt.commit, tt.date
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
