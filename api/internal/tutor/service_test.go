package tutor

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeEngine struct {
	reply string
	err   error

	gotSystem string
	gotUser   string
}

func (f *fakeEngine) Complete(_ context.Context, system, user string) (string, error) {
	f.gotSystem = system
	f.gotUser = user
	return f.reply, f.err
}

func TestExplainEndToEnd(t *testing.T) {
	eng := &fakeEngine{
		reply: "<HINT_1>Use mod 8.</HINT_1><FULL_SOLUTION>Answer: 5</FULL_SOLUTION>",
	}

	ex, err := Explain(context.Background(), eng, "Find 13^2 mod 8.")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if want := []string{"Use mod 8."}; !reflect.DeepEqual(ex.Hints, want) {
		t.Errorf("Hints = %#v, want %#v", ex.Hints, want)
	}
	if ex.Solution != "Answer: 5" {
		t.Errorf("Solution = %q, want %q", ex.Solution, "Answer: 5")
	}

	// поэтапная выдача поверх результата
	d := NewDisclosure(len(ex.Hints))
	if d.Revealed() != 0 {
		t.Fatalf("fresh disclosure starts at %d", d.Revealed())
	}
	if !d.RevealNext() {
		t.Fatal("first RevealNext must succeed")
	}
	if d.CanRevealMore() {
		t.Error("single hint revealed — nothing more to reveal")
	}
	if !d.SolutionUnlocked() {
		t.Error("solution must be available after the only hint")
	}
}

func TestExplainPromptContract(t *testing.T) {
	eng := &fakeEngine{reply: "<HINT_1>h</HINT_1><FULL_SOLUTION>s</FULL_SOLUTION>"}
	problem := "Solve x+1=3."
	if _, err := Explain(context.Background(), eng, problem); err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if !strings.Contains(eng.gotUser, problem) {
		t.Errorf("user prompt must contain the problem text, got %q", eng.gotUser)
	}
	for _, tag := range []string{"<HINT_1>", "<FULL_SOLUTION>"} {
		if !strings.Contains(eng.gotSystem, tag) {
			t.Errorf("system prompt must describe tag %s", tag)
		}
	}
}

func TestExplainNormalizesMarkup(t *testing.T) {
	eng := &fakeEngine{
		reply: "<HINT_1>Try \\( x \\ge 0 \\).</HINT_1><FULL_SOLUTION>\\[ x=2 \\]</FULL_SOLUTION>",
	}
	ex, err := Explain(context.Background(), eng, "p")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if want := "Try $x \\ge 0$."; ex.Hints[0] != want {
		t.Errorf("hint = %q, want %q", ex.Hints[0], want)
	}
	if want := "$$\nx=2\n$$"; ex.Solution != want {
		t.Errorf("solution = %q, want %q", ex.Solution, want)
	}
}

func TestExplainNoSections(t *testing.T) {
	eng := &fakeEngine{reply: "The answer is 42."}
	_, err := Explain(context.Background(), eng, "p")
	if !errors.Is(err, ErrNoSections) {
		t.Fatalf("err = %v, want ErrNoSections", err)
	}
}

func TestExplainPropagatesUpstreamError(t *testing.T) {
	boom := errors.New("gemini 500: upstream down")
	eng := &fakeEngine{err: boom}
	_, err := Explain(context.Background(), eng, "p")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want upstream error", err)
	}
	if errors.Is(err, ErrNoSections) {
		t.Fatal("upstream failure must not be reported as ErrNoSections")
	}
}
