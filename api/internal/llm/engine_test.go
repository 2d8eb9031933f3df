package llm

import (
	"context"
	"testing"
)

type namedEngine struct{ name string }

func (e *namedEngine) Name() string     { return e.name }
func (e *namedEngine) GetModel() string { return "m" }
func (e *namedEngine) Complete(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

func TestEnginesGetEngine(t *testing.T) {
	gem := &namedEngine{name: "gemini"}
	gpt := &namedEngine{name: "gpt"}
	engs := &Engines{Gemini: gem, OpenAI: gpt}

	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{in: "", want: gem},
		{in: "gemini", want: gem},
		{in: "gpt", want: gpt},
		{in: "OpenAI", want: gpt},
		{in: " deepseek ", wantErr: true}, // не сконфигурирован
		{in: "yandex", wantErr: true},
	}
	for _, tt := range tests {
		got, err := engs.GetEngine(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetEngine(%q): want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetEngine(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GetEngine(%q) = %v, want %v", tt.in, got.Name(), tt.want.Name())
		}
	}
}

func TestEnginesDefaultFallsBackToOpenAI(t *testing.T) {
	gpt := &namedEngine{name: "gpt"}
	engs := &Engines{OpenAI: gpt}
	got, err := engs.GetEngine("")
	if err != nil || got != gpt {
		t.Errorf("GetEngine(\"\") = %v, %v; want gpt", got, err)
	}
}

func TestManagerPerChatSelection(t *testing.T) {
	def := &namedEngine{name: "gemini"}
	other := &namedEngine{name: "gpt"}
	m := NewManager(def)

	if m.Get(1) != def {
		t.Error("unknown chat must get the default engine")
	}
	m.Set(1, other)
	if m.Get(1) != other {
		t.Error("chat 1 must get its own engine")
	}
	if m.Get(2) != def {
		t.Error("chat 2 must still get the default engine")
	}
}
