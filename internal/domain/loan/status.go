package loan

// Presentation lookup tables for loan statuses. Labels are the exact
// user-facing strings; colors are the badge class strings consumed by
// the clients.

var statusLabels = map[Status]string{
	StatusPending:             "در انتظار",
	StatusUnderReview:         "در حال بررسی",
	StatusApproved:            "تایید شده",
	StatusRejected:            "رد شده",
	StatusDisbursed:           "پرداخت شده",
	StatusCompleted:           "تکمیل شده",
	StatusCheckReceived:       "چک دریافت شد",
	StatusContractSent:        "قرارداد ارسال شد",
	StatusContractApproved:    "قرارداد تایید شد",
	StatusCreditTransferred:   "اعتبار واریز شد",
	StatusFeePaid:             "هزینه پرداخت شد",
	StatusReturnReceiptIssued: "رسید عودت صادر شد",
	StatusCheckDelivered:      "چک تحویل شد",
	StatusCommissionPaid:      "کارمزد پرداخت شد",
}

var statusColors = map[Status]string{
	StatusPending:             "bg-yellow-500/10 text-yellow-500 border-yellow-500/20",
	StatusUnderReview:         "bg-blue-500/10 text-blue-500 border-blue-500/20",
	StatusApproved:            "bg-green-500/10 text-green-500 border-green-500/20",
	StatusRejected:            "bg-red-500/10 text-red-500 border-red-500/20",
	StatusDisbursed:           "bg-purple-500/10 text-purple-500 border-purple-500/20",
	StatusCompleted:           "bg-gray-500/10 text-gray-500 border-gray-500/20",
	StatusCheckReceived:       "bg-indigo-500/10 text-indigo-600 border-indigo-500/20",
	StatusContractSent:        "bg-violet-500/10 text-violet-600 border-violet-500/20",
	StatusContractApproved:    "bg-teal-500/10 text-teal-600 border-teal-500/20",
	StatusCreditTransferred:   "bg-cyan-500/10 text-cyan-600 border-cyan-500/20",
	StatusFeePaid:             "bg-orange-500/10 text-orange-600 border-orange-500/20",
	StatusReturnReceiptIssued: "bg-slate-500/10 text-slate-600 border-slate-500/20",
	StatusCheckDelivered:      "bg-lime-500/10 text-lime-600 border-lime-500/20",
	StatusCommissionPaid:      "bg-pink-500/10 text-pink-600 border-pink-500/20",
}

// Label returns the user-facing text for s, or s itself when unknown.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Color returns the badge class string for s; unknown statuses share
// the pending palette.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusPending]
}

// Valid reports whether s is one of the thirteen workflow states.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Overridable reports whether the admin may set s directly.
func (s Status) Overridable() bool {
	for _, o := range OverrideStatuses {
		if s == o {
			return true
		}
	}
	return false
}

// Terminal reports whether no automatic transition leaves s. Admin
// override remains possible; nothing enforces terminality.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}
