package report

import "testing"

func TestSummarizeEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]any
		want string
	}{
		{
			name: "absent mapping",
			env:  nil,
			want: "No environment information provided",
		},
		{
			name: "empty mapping",
			env:  map[string]any{},
			want: "Environment not specified",
		},
		{
			name: "no recognized keys",
			env:  map[string]any{"locale": "en-US"},
			want: "Environment not specified",
		},
		{
			name: "os only",
			env:  map[string]any{"os": "Windows"},
			want: "OS: Windows",
		},
		{
			name: "browser with version",
			env:  map[string]any{"browser": "Chrome", "browserVersion": "120"},
			want: "Browser: Chrome 120",
		},
		{
			name: "browser without version",
			env:  map[string]any{"browser": "Firefox"},
			want: "Browser: Firefox",
		},
		{
			name: "os and browser keep fixed order",
			env:  map[string]any{"browser": "Safari", "os": "macOS", "browserVersion": "17.2"},
			want: "OS: macOS, Browser: Safari 17.2",
		},
		{
			name: "numeric version is formatted",
			env:  map[string]any{"browser": "Chrome", "browserVersion": 120},
			want: "Browser: Chrome 120",
		},
		{
			name: "empty values are ignored",
			env:  map[string]any{"os": "", "browser": ""},
			want: "Environment not specified",
		},
		{
			name: "version without browser is ignored",
			env:  map[string]any{"browserVersion": "120"},
			want: "Environment not specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeEnvironment(tt.env); got != tt.want {
				t.Errorf("SummarizeEnvironment() = %q, want %q", got, tt.want)
			}
		})
	}
}
