package intake

import (
	"testing"
)

func TestStepSequenceIsLinear(t *testing.T) {
	seq := Steps()
	if len(seq) != 9 {
		t.Fatalf("steps = %d, want 9", len(seq))
	}
	if seq[0].State != First().State {
		t.Fatalf("first step = %s, want %s", seq[0].State, First().State)
	}

	for i, step := range seq {
		next, ok := Next(step.State)
		if i == len(seq)-1 {
			if ok {
				t.Fatalf("terminal step %s has successor %s", step.State, next.State)
			}
			if !Terminal(step.State) {
				t.Fatalf("step %s should be terminal", step.State)
			}
			continue
		}
		if !ok {
			t.Fatalf("step %s has no successor", step.State)
		}
		if next.State != seq[i+1].State {
			t.Fatalf("successor of %s = %s, want %s", step.State, next.State, seq[i+1].State)
		}
		if Terminal(step.State) {
			t.Fatalf("step %s reported terminal", step.State)
		}
	}
}

func TestByStateUnknown(t *testing.T) {
	if _, ok := ByState("form_unknown"); ok {
		t.Fatal("expected lookup miss for unknown state")
	}
}

func TestStepKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, step := range Steps() {
		if step.Key == "" {
			t.Fatalf("step %s has empty key", step.State)
		}
		if seen[step.Key] {
			t.Fatalf("duplicate key %q", step.Key)
		}
		seen[step.Key] = true
	}
}

func TestChoiceSteps(t *testing.T) {
	withChoices := map[string]bool{
		KeyGoal: true, KeyExperience: true, KeyStress: true, KeyTime: true, KeyBudget: true,
	}
	for _, step := range Steps() {
		if withChoices[step.Key] && len(step.Choices) == 0 {
			t.Fatalf("step %s should offer quick replies", step.State)
		}
		if !withChoices[step.Key] && len(step.Choices) != 0 {
			t.Fatalf("step %s should be free-text", step.State)
		}
	}
}

func TestDeriveContact(t *testing.T) {
	if got := DeriveContact("anna_fit"); got != "@anna_fit" {
		t.Fatalf("contact = %q", got)
	}
	if got := DeriveContact(""); got != ContactSentinel {
		t.Fatalf("contact fallback = %q, want sentinel", got)
	}
	if got := DeriveContact("  "); got != ContactSentinel {
		t.Fatalf("contact fallback for blank = %q, want sentinel", got)
	}
}
