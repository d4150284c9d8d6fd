package testutil

import (
	"os"
	"testing"
)

// mockTB records whether an assertion failed.
type mockTB struct {
	testing.TB
	failed bool
}

func (m *mockTB) Helper()                           {}
func (m *mockTB) Fatal(args ...any)                 { m.failed = true }
func (m *mockTB) Fatalf(format string, args ...any) { m.failed = true }

func TestAssertions(t *testing.T) {
	var nilPtr *int
	var typedNil error = (*os.PathError)(nil)

	tests := []struct {
		name     string
		check    func(tb testing.TB)
		wantFail bool
	}{
		{"Equal same", func(tb testing.TB) { Equal(tb, 1, 1) }, false},
		{"Equal different", func(tb testing.TB) { Equal(tb, "a", "b") }, true},
		{"SliceEqual same", func(tb testing.TB) { SliceEqual(tb, []int{1, 2}, []int{1, 2}) }, false},
		{"SliceEqual empty", func(tb testing.TB) { SliceEqual(tb, []int{}, nil) }, false},
		{"SliceEqual length", func(tb testing.TB) { SliceEqual(tb, []int{1}, []int{1, 2}) }, true},
		{"SliceEqual content", func(tb testing.TB) { SliceEqual(tb, []int{1, 2}, []int{1, 3}) }, true},
		{"NoError nil", func(tb testing.TB) { NoError(tb, nil) }, false},
		{"NoError err", func(tb testing.TB) { NoError(tb, os.ErrNotExist) }, true},
		{"Error err", func(tb testing.TB) { Error(tb, os.ErrNotExist) }, false},
		{"Error nil", func(tb testing.TB) { Error(tb, nil) }, true},
		{"Nil untyped", func(tb testing.TB) { Nil(tb, nil) }, false},
		{"Nil pointer", func(tb testing.TB) { Nil(tb, nilPtr) }, false},
		{"Nil typed in interface", func(tb testing.TB) { Nil(tb, typedNil) }, false},
		{"Nil value", func(tb testing.TB) { Nil(tb, 42) }, true},
		{"Nil empty slice", func(tb testing.TB) { Nil(tb, []int{}) }, true},
		{"NotNil value", func(tb testing.TB) { NotNil(tb, 42) }, false},
		{"NotNil nil pointer", func(tb testing.TB) { NotNil(tb, nilPtr) }, true},
		{"NotEmpty", func(tb testing.TB) { NotEmpty(tb, []int{1}) }, false},
		{"NotEmpty empty", func(tb testing.TB) { NotEmpty(tb, []int{}) }, true},
		{"Len", func(tb testing.TB) { Len(tb, []int{1, 2, 3}, 3) }, false},
		{"Len mismatch", func(tb testing.TB) { Len(tb, []int{1, 2, 3}, 5) }, true},
		{"True", func(tb testing.TB) { True(tb, true) }, false},
		{"True false", func(tb testing.TB) { True(tb, false) }, true},
		{"False", func(tb testing.TB) { False(tb, false) }, false},
		{"False true", func(tb testing.TB) { False(tb, true) }, true},
		{"Contains", func(tb testing.TB) { Contains(tb, "a ?? b", "??") }, false},
		{"Contains missing", func(tb testing.TB) { Contains(tb, "a ?? b", "::") }, true},
		{"Greater", func(tb testing.TB) { Greater(tb, 5, 3) }, false},
		{"Greater equal", func(tb testing.TB) { Greater(tb, 3, 3) }, true},
		{"Greater strings", func(tb testing.TB) { Greater(tb, "b", "a") }, false},
		{"Fail", func(tb testing.TB) { Fail(tb, "boom") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockTB{}
			tt.check(m)
			if m.failed != tt.wantFail {
				t.Errorf("failed = %v, want %v", m.failed, tt.wantFail)
			}
		})
	}
}

func TestFormatMsg(t *testing.T) {
	tests := []struct {
		in   []any
		want string
	}{
		{nil, "assertion failed"},
		{[]any{"custom"}, "custom"},
		{[]any{"value is %d", 42}, "value is 42"},
		{[]any{123}, "assertion failed"},
	}
	for _, tt := range tests {
		if got := formatMsg(tt.in); got != tt.want {
			t.Errorf("formatMsg(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
