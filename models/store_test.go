package models

import "testing"

func TestStoreEffectiveTimezone(t *testing.T) {
	s := &Store{Timezone: "America/Los_Angeles"}
	if got := s.EffectiveTimezone(); got != "America/Los_Angeles" {
		t.Errorf("EffectiveTimezone = %q", got)
	}

	// rows that predate the timezone column fall back to Asia/Tokyo
	for _, tz := range []string{"", "   "} {
		s := &Store{Timezone: tz}
		if got := s.EffectiveTimezone(); got != "Asia/Tokyo" {
			t.Errorf("EffectiveTimezone(%q) = %q, want Asia/Tokyo", tz, got)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !TransactionKindSell.IsValid() || !TransactionKindBuy.IsValid() {
		t.Error("kinds should be valid")
	}
	if TransactionKind("Refund").IsValid() {
		t.Error("unknown kind should be invalid")
	}
	if !TransactionStatusCompleted.IsValid() || !LossStatusFinished.IsValid() {
		t.Error("statuses should be valid")
	}
	if !WholesaleResourceTypeLoss.IsValid() {
		t.Error("Loss resource type should be valid")
	}
}
