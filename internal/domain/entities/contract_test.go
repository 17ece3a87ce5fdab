package entities

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from ContractStatus
		to   ContractStatus
		want bool
	}{
		{"draft to pending", ContractStatusDraft, ContractStatusPendingSignature, true},
		{"pending to partially", ContractStatusPendingSignature, ContractStatusPartiallySigned, true},
		{"partially to fully", ContractStatusPartiallySigned, ContractStatusFullySigned, true},
		{"fully to active", ContractStatusFullySigned, ContractStatusActive, true},
		{"active to completed", ContractStatusActive, ContractStatusCompleted, true},
		{"active to suspended", ContractStatusActive, ContractStatusSuspended, true},
		{"active to disputed", ContractStatusActive, ContractStatusDisputed, true},
		{"active to terminated", ContractStatusActive, ContractStatusTerminated, true},
		{"self transition", ContractStatusActive, ContractStatusActive, true},
		{"draft to active skips signing", ContractStatusDraft, ContractStatusActive, false},
		{"pending to fully skips partially", ContractStatusPendingSignature, ContractStatusFullySigned, false},
		{"completed is terminal", ContractStatusCompleted, ContractStatusActive, false},
		{"terminated is terminal", ContractStatusTerminated, ContractStatusActive, false},
		{"draft cancellable", ContractStatusDraft, ContractStatusCancelled, true},
		{"active cancellable", ContractStatusActive, ContractStatusCancelled, true},
		{"completed not cancellable", ContractStatusCompleted, ContractStatusCancelled, false},
		{"terminated not cancellable", ContractStatusTerminated, ContractStatusCancelled, false},
		{"cancelled not cancellable", ContractStatusCancelled, ContractStatusCancelled, true},
		{"active cannot revert", ContractStatusActive, ContractStatusDraft, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s, %s) = %t, want %t", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestContractStatus_IsTerminal(t *testing.T) {
	terminal := []ContractStatus{ContractStatusCompleted, ContractStatusTerminated, ContractStatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	open := []ContractStatus{ContractStatusDraft, ContractStatusPendingSignature, ContractStatusPartiallySigned, ContractStatusFullySigned, ContractStatusActive, ContractStatusSuspended, ContractStatusDisputed}
	for _, s := range open {
		if s.IsTerminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestContract_SignatureDerivedStatus(t *testing.T) {
	required := func(status SignatureStatus) Signature {
		return Signature{Status: status, Required: true}
	}

	t.Run("none signed", func(t *testing.T) {
		c := Contract{Signatures: []Signature{required(SignatureStatusPending), required(SignatureStatusPending)}}
		if got := c.SignatureDerivedStatus(); got != ContractStatusPendingSignature {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("one of two signed", func(t *testing.T) {
		c := Contract{Signatures: []Signature{required(SignatureStatusSigned), required(SignatureStatusPending)}}
		if got := c.SignatureDerivedStatus(); got != ContractStatusPartiallySigned {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("all required signed", func(t *testing.T) {
		c := Contract{Signatures: []Signature{required(SignatureStatusSigned), required(SignatureStatusSigned)}}
		if got := c.SignatureDerivedStatus(); got != ContractStatusFullySigned {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("optional signer does not gate completion", func(t *testing.T) {
		c := Contract{Signatures: []Signature{
			required(SignatureStatusSigned),
			required(SignatureStatusSigned),
			{Status: SignatureStatusPending, Required: false, Role: SignerRoleWitness},
		}}
		if got := c.SignatureDerivedStatus(); got != ContractStatusFullySigned {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("no required signers never counts as fully signed", func(t *testing.T) {
		c := Contract{Signatures: []Signature{{Status: SignatureStatusSigned, Required: false}}}
		if got := c.SignatureDerivedStatus(); got != ContractStatusPartiallySigned {
			t.Fatalf("got %s", got)
		}
	})
}

func TestContract_Totals(t *testing.T) {
	c := Contract{
		Variations: []Variation{
			{Status: VariationStatusApproved, CostDelta: 1500},
			{Status: VariationStatusApproved, CostDelta: -200},
			{Status: VariationStatusProposed, CostDelta: 10000},
			{Status: VariationStatusRejected, CostDelta: 5000},
		},
		Payments: []Payment{
			{Amount: 2000, RetentionHeld: 100},
			{Amount: 3000},
		},
	}

	if got := c.ApprovedVariationTotal(); got != 1300 {
		t.Fatalf("ApprovedVariationTotal = %.2f, want 1300", got)
	}
	if got := c.PaidTotal(); got != 5000 {
		t.Fatalf("PaidTotal = %.2f, want 5000", got)
	}
}

func TestContract_Lookups(t *testing.T) {
	now := time.Now()
	c := Contract{
		Signatures: []Signature{{ID: "sig-1", SignerEmail: "a@example.com"}},
		Milestones: []Milestone{{ID: "ms-1", TargetDate: now}},
	}

	if c.SignatureByID("sig-1") == nil || c.SignatureByID("missing") != nil {
		t.Fatalf("SignatureByID lookup broken")
	}
	if c.SignatureByEmail("a@example.com") == nil || c.SignatureByEmail("b@example.com") != nil {
		t.Fatalf("SignatureByEmail lookup broken")
	}
	if c.MilestoneByID("ms-1") == nil || c.MilestoneByID("missing") != nil {
		t.Fatalf("MilestoneByID lookup broken")
	}

	// Lookups return pointers into the contract so callers can mutate in place.
	c.SignatureByID("sig-1").Status = SignatureStatusSigned
	if c.Signatures[0].Status != SignatureStatusSigned {
		t.Fatalf("expected in-place mutation through SignatureByID")
	}
}
