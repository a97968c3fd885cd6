package common

import "testing"

func TestGetAccountFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "explicit account",
			args: map[string]interface{}{"account": "work"},
			want: "work",
		},
		{
			name: "empty account falls back to default",
			args: map[string]interface{}{"account": ""},
			want: "default",
		},
		{
			name: "missing account",
			args: map[string]interface{}{},
			want: "default",
		},
		{
			name: "non-string account",
			args: map[string]interface{}{"account": 42},
			want: "default",
		},
		{
			name: "nil args",
			args: nil,
			want: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAccountFromArgs(tt.args); got != tt.want {
				t.Errorf("GetAccountFromArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}
