package loan

// StageStatus is the per-stage completion flag of the detailed
// progress view.
type StageStatus string

const (
	StageCompleted  StageStatus = "completed"
	StageInProgress StageStatus = "in_progress"
	StagePending    StageStatus = "pending"
	StageRejected   StageStatus = "rejected"
)

// Stage is one row of the ordered progress display.
type Stage struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Status   StageStatus `json:"status"`
	Required bool        `json:"required,omitempty"`
}

// Stages derives the ten-stage progress display from a loan snapshot.
// Pure and stateless: recomputed fresh on every call, no memoization.
//
// Stage 4 ("guarantors introduced") keeps the behavior as shipped: the
// completion threshold is 1 whenever a loan type is set (0 otherwise),
// which makes the in_progress branch unreachable — the stage degrades
// to completed/pending in practice. The threshold deliberately ignores
// the loan type's minGuarantors.
func Stages(l *Loan) []Stage {
	var approved, rejected int
	for i := range l.Guarantors {
		switch l.Guarantors[i].EffectiveStatus() {
		case GuarantorApproved:
			approved++
		case GuarantorRejected:
			rejected++
		}
	}
	total := len(l.Guarantors)

	guarantorThreshold := 0
	if l.LoanType != "" {
		guarantorThreshold = 1
	}
	guarantorsIntro := StagePending
	switch {
	case total >= guarantorThreshold:
		guarantorsIntro = StageCompleted
	case total > 0:
		guarantorsIntro = StageInProgress
	}

	guarantorApproval := StagePending
	switch {
	case total == 0:
		guarantorApproval = StagePending
	case rejected > 0:
		guarantorApproval = StageRejected
	case approved == total:
		guarantorApproval = StageCompleted
	case approved > 0:
		guarantorApproval = StageInProgress
	}

	review := StagePending
	switch l.Status {
	case StatusUnderReview:
		review = StageInProgress
	case StatusApproved:
		review = StageCompleted
	}

	finalApproval := StagePending
	switch l.Status {
	case StatusApproved:
		finalApproval = StageCompleted
	case StatusRejected:
		finalApproval = StageRejected
	}

	return []Stage{
		{ID: "created", Label: "ثبت درخواست", Status: StageCompleted},
		{ID: "credit_check", Label: "پرداخت هزینه اعتبارسنجی", Status: boolStage(l.CreditCheck.Paid)},
		{ID: "documents", Label: "بارگذاری مدارک", Status: boolStage(len(l.Documents) > 0)},
		{ID: "guarantors", Label: "معرفی ضامن", Status: guarantorsIntro, Required: total > 0},
		{ID: "guarantor_approval", Label: "تایید ضامن‌ها", Status: guarantorApproval, Required: total > 0},
		{ID: "review", Label: "بررسی توسط مدیر", Status: review},
		{ID: "approval", Label: "تایید نهایی", Status: finalApproval},
		{ID: "contract", Label: "ارسال قرارداد", Status: boolStage(l.Contract.FileURL != "")},
		{ID: "disbursement", Label: "پرداخت وام", Status: boolStage(l.Status == StatusDisbursed)},
		{ID: "completed", Label: "تکمیل", Status: boolStage(l.Status == StatusCompleted)},
	}
}

func boolStage(done bool) StageStatus {
	if done {
		return StageCompleted
	}
	return StagePending
}
