package asset

import (
	"strings"
	"testing"
)

func TestRender_SubstitutesVariables(t *testing.T) {
	vars := map[string]any{
		"env":        "prod",
		"cluster_id": "c-123",
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			name: "plain variable",
			tmpl: "cluster: {{ cluster_id }}",
			want: "cluster: c-123",
		},
		{
			name: "expression",
			tmpl: "schema: {{ env + \"_yield\" }}",
			want: "schema: prod_yield",
		},
		{
			name: "conditional",
			tmpl: "mode: {{ env == \"prod\" ? \"strict\" : \"relaxed\" }}",
			want: "mode: strict",
		},
		{
			name: "multiple tokens",
			tmpl: "{{ env }}/{{ cluster_id }}",
			want: "prod/c-123",
		},
		{
			name: "no tokens",
			tmpl: "name: daily_yield",
			want: "name: daily_yield",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, vars)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestRender_UndefinedVariableRejected(t *testing.T) {
	_, err := Render("cluster: {{ cluster_id }}", map[string]any{"env": "dev"})
	if err == nil {
		t.Fatal("Render accepted an undefined variable")
	}
	if !strings.Contains(err.Error(), "cluster_id") {
		t.Errorf("error does not name the token: %v", err)
	}
}

func TestRender_MalformedTokensRejected(t *testing.T) {
	vars := map[string]any{"env": "dev"}

	for _, tmpl := range []string{
		"unterminated {{ env",
		"empty {{ }} token",
	} {
		t.Run(tmpl, func(t *testing.T) {
			if _, err := Render(tmpl, vars); err == nil {
				t.Errorf("Render(%q) succeeded, want error", tmpl)
			}
		})
	}
}
