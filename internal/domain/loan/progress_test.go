package loan

import "testing"

func TestProgress_Percentages(t *testing.T) {
	cases := map[Status]int{
		StatusPending:     20,
		StatusUnderReview: 40,
		StatusApproved:    60,
		StatusDisbursed:   80,
		StatusCompleted:   100,
	}
	for status, want := range cases {
		got, show := Progress(status)
		if !show {
			t.Errorf("%s: bar suppressed", status)
		}
		if got != want {
			t.Errorf("%s: percent = %d, want %d", status, got, want)
		}
	}
}

func TestProgress_RejectedSuppressesBar(t *testing.T) {
	percent, show := Progress(StatusRejected)
	if show {
		t.Fatalf("rejected loan must not render a progress bar")
	}
	if percent != 0 {
		t.Fatalf("percent = %d, want 0", percent)
	}
}

func TestProgressSteps(t *testing.T) {
	steps := ProgressSteps(StatusApproved)
	if len(steps) != 5 {
		t.Fatalf("len = %d, want 5", len(steps))
	}
	wantCompleted := []bool{true, true, true, false, false}
	for i, w := range wantCompleted {
		if steps[i].Completed != w {
			t.Errorf("approved: step %d completed = %v, want %v", i, steps[i].Completed, w)
		}
	}
	// First step is completed regardless of status.
	if !ProgressSteps(StatusPending)[0].Completed {
		t.Errorf("first step must always be completed")
	}
}

func TestStatusLabelAndColor(t *testing.T) {
	if got := StatusCheckReceived.Label(); got != "چک دریافت شد" {
		t.Errorf("label = %q", got)
	}
	if StatusPending.Color() == "" || StatusCommissionPaid.Color() == "" {
		t.Errorf("missing color entries")
	}
	if Status("bogus").Valid() {
		t.Errorf("bogus status must not be valid")
	}
	if !StatusDisbursed.Overridable() || StatusCheckReceived.Overridable() {
		t.Errorf("override set wrong")
	}
	if !StatusCompleted.Terminal() || !StatusRejected.Terminal() || StatusApproved.Terminal() {
		t.Errorf("terminal set wrong")
	}
}
