package cmd

import (
	"testing"
)

func TestParseCommaSeparatedList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single value",
			input:    "primary",
			expected: []string{"primary"},
		},
		{
			name:     "multiple values",
			input:    "primary,team@example.com",
			expected: []string{"primary", "team@example.com"},
		},
		{
			name:     "values with spaces around comma",
			input:    "primary, team@example.com",
			expected: []string{"primary", "team@example.com"},
		},
		{
			name:     "trailing comma",
			input:    "primary,team@example.com,",
			expected: []string{"primary", "team@example.com"},
		},
		{
			name:     "leading comma",
			input:    ",primary,team@example.com",
			expected: []string{"primary", "team@example.com"},
		},
		{
			name:     "multiple consecutive commas",
			input:    "primary,,team@example.com",
			expected: []string{"primary", "team@example.com"},
		},
		{
			name:     "only commas and spaces",
			input:    ",  , , ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseCommaSeparatedList(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d elements, got %d: %v", len(tt.expected), len(result), result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("element %d: expected %q, got %q", i, tt.expected[i], result[i])
				}
			}
		})
	}
}

func TestParseIntList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
		wantErr  bool
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single value",
			input:    "0",
			expected: []int{0},
		},
		{
			name:     "multiple values",
			input:    "0,1,4",
			expected: []int{0, 1, 4},
		},
		{
			name:     "values with spaces",
			input:    " 9, 10, 14 ",
			expected: []int{9, 10, 14},
		},
		{
			name:    "non-numeric value",
			input:   "0,monday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseIntList(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d elements, got %d: %v", len(tt.expected), len(result), result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("element %d: expected %d, got %d", i, tt.expected[i], result[i])
				}
			}
		})
	}
}
