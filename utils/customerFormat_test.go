package utils

import (
	"testing"
	"time"

	"github.com/retailcraft/pos_backend/models"
)

func TestFormatCustomerAddress(t *testing.T) {
	c := &models.Customer{
		Prefecture: "東京都",
		City:       "台東区",
		Street:     "上野1-2-3",
		Building:   "",
	}
	if got := FormatCustomerAddress(c); got != "東京都 台東区 上野1-2-3" {
		t.Errorf("FormatCustomerAddress = %q", got)
	}

	if got := FormatCustomerAddress(&models.Customer{}); got != "" {
		t.Errorf("empty customer address = %q", got)
	}
	if got := FormatCustomerAddress(nil); got != "" {
		t.Errorf("nil customer address = %q", got)
	}
}

func TestCustomerAge(t *testing.T) {
	birth := time.Date(1990, 9, 15, 0, 0, 0, 0, time.UTC)
	c := &models.Customer{BirthDate: &birth}

	beforeBirthday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if got := CustomerAge(c, beforeBirthday); got != 35 {
		t.Errorf("age before birthday = %d, want 35", got)
	}

	onBirthday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if got := CustomerAge(c, onBirthday); got != 36 {
		t.Errorf("age on birthday = %d, want 36", got)
	}

	if got := CustomerAge(&models.Customer{}, onBirthday); got != 0 {
		t.Errorf("age with unknown birth date = %d, want 0", got)
	}
	if got := CustomerAge(nil, onBirthday); got != 0 {
		t.Errorf("age for nil customer = %d, want 0", got)
	}
}
