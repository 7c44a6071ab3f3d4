package engine

import (
	"errors"
	"testing"

	"github.com/sprout-cli/sprout/internal/template/model"
)

func TestSubstEngineRender(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		data    model.AnswerMap
		want    string
		wantErr bool
	}{
		{
			name: "single marker",
			text: "Hello, <%= projectName %>",
			data: model.AnswerMap{"projectName": "World"},
			want: "Hello, World",
		},
		{
			name: "multiple markers",
			text: "# <%= projectName %> by <%= author %>",
			data: model.AnswerMap{"projectName": "demo", "author": "alice"},
			want: "# demo by alice",
		},
		{
			name: "repeated marker",
			text: "<%=name%> <%= name %>",
			data: model.AnswerMap{"name": "x"},
			want: "x x",
		},
		{
			name: "no markers passes through",
			text: "plain text, no substitution",
			data: model.AnswerMap{"projectName": "demo"},
			want: "plain text, no substitution",
		},
		{
			name: "non-string value",
			text: "port: <%= port %>, debug: <%= debug %>",
			data: model.AnswerMap{"port": 8080, "debug": true},
			want: "port: 8080, debug: true",
		},
		{
			name: "nil value renders empty",
			text: "v=<%= missingDefault %>",
			data: model.AnswerMap{"missingDefault": nil},
			want: "v=",
		},
		{
			name:    "unknown variable is an error",
			text:    "Hello, <%= nope %>",
			data:    model.AnswerMap{"projectName": "demo"},
			wantErr: true,
		},
		{
			name: "empty data with no markers",
			text: "nothing here",
			data: model.AnswerMap{},
			want: "nothing here",
		},
	}

	eng := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Render(tt.text, tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				var undefErr *UndefinedVariableError
				if !errors.As(err, &undefErr) {
					t.Fatalf("Expected UndefinedVariableError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVariableNames(t *testing.T) {
	names := VariableNames("<%= a %> <%= b %> <%= a %>")
	if len(names) != 2 {
		t.Fatalf("Expected 2 names, got %d: %v", len(names), names)
	}
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected [a b] in order of first appearance, got %v", names)
	}
}

func TestContainsMarker(t *testing.T) {
	if !ContainsMarker("x <%= y %> z") {
		t.Error("Expected marker to be detected")
	}
	if ContainsMarker("no markers") {
		t.Error("Expected no marker")
	}
	if ContainsMarker("<%= not-an-identifier %>") {
		t.Error("Expected invalid identifier not to match")
	}
}
