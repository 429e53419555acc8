package build

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if s := String(); !strings.HasPrefix(s, "dingcad "+Version) {
		t.Errorf("String() = %q, want dingcad %s prefix", s, Version)
	}
}

func TestStringWithCommit(t *testing.T) {
	old := Commit
	Commit = "abc1234"
	defer func() { Commit = old }()
	if s := String(); !strings.Contains(s, "(abc1234)") {
		t.Errorf("String() = %q, want injected commit", s)
	}
}
