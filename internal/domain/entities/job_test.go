package entities

import "testing"

func TestJobOwnership(t *testing.T) {
	j := Job{CustomerID: "cust-1", ProviderID: "prov-1"}

	if !j.IsCustomer("cust-1") || j.IsCustomer("prov-1") || j.IsCustomer("") {
		t.Fatalf("IsCustomer misclassified")
	}
	if !j.IsProvider("prov-1") || j.IsProvider("cust-1") || j.IsProvider("") {
		t.Fatalf("IsProvider misclassified")
	}
	if !j.IsParty("cust-1") || !j.IsParty("prov-1") || j.IsParty("other") {
		t.Fatalf("IsParty misclassified")
	}
}

func TestJobCanSubmitQuote(t *testing.T) {
	cases := []struct {
		name   string
		status JobStatus
		locked bool
		want   bool
	}{
		{"pending unlocked", JobStatusPending, false, true},
		{"confirmed unlocked", JobStatusConfirmed, false, true},
		{"pending locked", JobStatusPending, true, false},
		{"in progress", JobStatusInProgress, false, false},
		{"cancelled", JobStatusCancelled, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := Job{Status: tc.status, QuoteLocked: tc.locked}
			if got := j.CanSubmitQuote(); got != tc.want {
				t.Fatalf("CanSubmitQuote() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestJobCodeTransitions(t *testing.T) {
	if !(Job{Status: JobStatusPending}).CanGenerateStartCode() {
		t.Fatalf("pending job should allow a start code")
	}
	if !(Job{Status: JobStatusConfirmed}).CanVerifyStartCode() {
		t.Fatalf("confirmed job should allow start verification")
	}
	if (Job{Status: JobStatusInProgress}).CanGenerateStartCode() {
		t.Fatalf("in-progress job should not re-issue a start code")
	}
	if !(Job{Status: JobStatusInProgress}).CanGenerateEndCode() {
		t.Fatalf("in-progress job should allow an end code")
	}
	if (Job{Status: JobStatusConfirmed}).CanVerifyEndCode() {
		t.Fatalf("end verification requires work to be underway")
	}
}

func TestJobPaymentEligible(t *testing.T) {
	eligible := []JobStatus{JobStatusInProgress, JobStatusAwaitingPayment, JobStatusCompleted}
	for _, s := range eligible {
		if !(Job{Status: s}).PaymentEligible() {
			t.Fatalf("status %s should be payment eligible", s)
		}
	}
	ineligible := []JobStatus{JobStatusPending, JobStatusConfirmed, JobStatusCancelled, JobStatusDisputed}
	for _, s := range ineligible {
		if (Job{Status: s}).PaymentEligible() {
			t.Fatalf("status %s should not be payment eligible", s)
		}
	}
}

func TestJobToleranceBand(t *testing.T) {
	j := Job{QuoteTotal: 1000}

	min, max := j.ToleranceBand()
	if min != 500 || max != 1500 {
		t.Fatalf("band = [%v, %v], want [500, 1500]", min, max)
	}

	for _, amount := range []float64{500, 1000, 1500} {
		if !j.WithinToleranceBand(amount) {
			t.Fatalf("amount %v should be inside the band", amount)
		}
	}
	for _, amount := range []float64{499.99, 1500.01, 0} {
		if j.WithinToleranceBand(amount) {
			t.Fatalf("amount %v should be outside the band", amount)
		}
	}

	// No locked quote means no band at all.
	if (Job{}).WithinToleranceBand(100) {
		t.Fatalf("zero quote total must reject every amount")
	}
}
