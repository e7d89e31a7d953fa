package loan

// Customer-facing progress: intentionally coarser than Stages. A bare
// percentage plus a five-step checklist, both derived from the status
// alone.

var statusProgress = map[Status]int{
	StatusPending:     20,
	StatusUnderReview: 40,
	StatusApproved:    60,
	StatusRejected:    0,
	StatusDisbursed:   80,
	StatusCompleted:   100,
}

// Progress returns the percentage for the customer progress bar and
// whether the bar should render at all. A rejected loan suppresses the
// bar entirely (the rejection message replaces it); the percentage is
// meaningless in that case.
func Progress(s Status) (percent int, show bool) {
	if s == StatusRejected {
		return 0, false
	}
	return statusProgress[s], true
}

// ProgressStep is one row of the customer checklist.
type ProgressStep struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// ProgressSteps returns the five-step customer checklist for s.
func ProgressSteps(s Status) []ProgressStep {
	reached := func(states ...Status) bool {
		for _, st := range states {
			if s == st {
				return true
			}
		}
		return false
	}
	return []ProgressStep{
		{Label: "درخواست ثبت شد", Completed: true},
		{Label: "در حال بررسی", Completed: reached(StatusUnderReview, StatusApproved, StatusDisbursed, StatusCompleted)},
		{Label: "تایید شده", Completed: reached(StatusApproved, StatusDisbursed, StatusCompleted)},
		{Label: "قرارداد امضا شد", Completed: reached(StatusDisbursed, StatusCompleted)},
		{Label: "وجه پرداخت شد", Completed: reached(StatusCompleted)},
	}
}
