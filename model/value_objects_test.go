package model

import (
	"testing"
	"time"
)

// TestNewDateBound tests the NewDateBound function
func TestNewDateBound(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    *time.Time
		description string
	}{
		{
			name:        "Empty string",
			input:       "",
			description: "空文字列の場合、境界は未設定になること",
		},
		{
			name:        "Date only",
			input:       "2020-01-01",
			expected:    ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			description: "YYYY-MM-DD形式を受け付けること",
		},
		{
			name:        "RFC3339 truncated to date",
			input:       "2020-01-01T23:30:00Z",
			expected:    ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			description: "RFC3339形式は日付に切り詰められること",
		},
		{
			name:        "Invalid",
			input:       "01/02/2020",
			expectError: true,
			description: "不正な形式はエラーになること",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound, err := NewDateBound("date", tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("%s: expected error but got nil", tt.description)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.description, err)
			}
			got := bound.Ptr()
			switch {
			case tt.expected == nil && got != nil:
				t.Errorf("%s: expected unset bound, got %v", tt.description, *got)
			case tt.expected != nil && (got == nil || !got.Equal(*tt.expected)):
				t.Errorf("%s: expected %v, got %v", tt.description, *tt.expected, got)
			}
		})
	}
}

// TestNewFloatBound tests the NewFloatBound function
func TestNewFloatBound(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    *float64
	}{
		{name: "Empty", input: ""},
		{name: "Decimal", input: "0.25", expected: ptr(0.25)},
		{name: "Integer", input: "10", expected: ptr(10.0)},
		{name: "Not a number", input: "far", expectError: true},
		{name: "NaN", input: "NaN", expectError: true},
		{name: "Infinity", input: "inf", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound, err := NewFloatBound("max_distance", tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := bound.Ptr()
			if (got == nil) != (tt.expected == nil) || (got != nil && *got != *tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewHazardFlag(t *testing.T) {
	flag, err := NewHazardFlag("true")
	if err != nil || flag.Ptr() == nil || !*flag.Ptr() {
		t.Errorf("Expected true flag, got %v (err=%v)", flag, err)
	}

	flag, err = NewHazardFlag("")
	if err != nil || flag.Ptr() != nil {
		t.Errorf("Expected unset flag, got %v (err=%v)", flag, err)
	}

	if _, err := NewHazardFlag("maybe"); err == nil {
		t.Error("Expected error for invalid flag")
	}
}

// TestNewLimit tests the NewLimit function
func TestNewLimit(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectError   bool
		expectedLimit int
		description   string
	}{
		{name: "Default", input: "", expectedLimit: 0, description: "空文字列の場合、無制限(0)になること"},
		{name: "Valid", input: "25", expectedLimit: 25, description: "正常なlimitで成功すること"},
		{name: "Zero", input: "0", expectedLimit: 0, description: "0は無制限として扱われること"},
		{name: "Negative", input: "-10", expectError: true, description: "負の数の場合、エラーになること"},
		{name: "Non-numeric", input: "abc", expectError: true, description: "数値でない場合、エラーになること"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, err := NewLimit(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("%s: expected error but got nil", tt.description)
				}
				return
			}
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.description, err)
				return
			}
			if limit.Int() != tt.expectedLimit {
				t.Errorf("%s: expected limit %d, got %d", tt.description, tt.expectedLimit, limit.Int())
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
