package tutor

import "testing"

func TestDisclosureRevealNextClamps(t *testing.T) {
	d := NewDisclosure(3)

	if d.Revealed() != 0 {
		t.Fatalf("fresh disclosure starts at %d, want 0", d.Revealed())
	}
	if d.SolutionUnlocked() {
		t.Error("solution must stay locked while hints remain")
	}

	for i := 1; i <= 3; i++ {
		if !d.RevealNext() {
			t.Fatalf("RevealNext #%d returned false", i)
		}
		if d.Revealed() != i {
			t.Fatalf("Revealed() = %d, want %d", d.Revealed(), i)
		}
	}

	// четвёртый вызов — no-op
	if d.RevealNext() {
		t.Error("RevealNext beyond the limit must return false")
	}
	if d.Revealed() != 3 {
		t.Errorf("Revealed() = %d after overflow, want 3", d.Revealed())
	}
	if d.CanRevealMore() {
		t.Error("CanRevealMore must be false at the limit")
	}
	if !d.SolutionUnlocked() {
		t.Error("solution must unlock after the last hint")
	}
}

func TestDisclosureRevealAll(t *testing.T) {
	d := NewDisclosure(3)
	d.RevealNext()
	d.RevealAll()
	if d.Revealed() != 3 {
		t.Errorf("Revealed() = %d after RevealAll, want 3", d.Revealed())
	}
	if d.CanRevealMore() {
		t.Error("CanRevealMore must be false after RevealAll")
	}
}

func TestDisclosureNoHints(t *testing.T) {
	d := NewDisclosure(0)
	if d.CanRevealMore() {
		t.Error("no hints — nothing to reveal")
	}
	if d.RevealNext() {
		t.Error("RevealNext with zero hints must return false")
	}
	// решение доступно сразу: скрывать нечего
	if !d.SolutionUnlocked() {
		t.Error("solution must be unlocked when there are no hints")
	}
}

func TestDisclosureNegativeCount(t *testing.T) {
	d := NewDisclosure(-2)
	if d.Total() != 0 {
		t.Errorf("Total() = %d, want 0", d.Total())
	}
}
