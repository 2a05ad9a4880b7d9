package utils

import (
	"strings"
	"time"

	"github.com/retailcraft/pos_backend/models"
)

// FormatCustomerAddress joins the customer's address components into the
// single display string stored on the customer dimension snapshot.
func FormatCustomerAddress(c *models.Customer) string {
	if c == nil {
		return ""
	}
	parts := []string{c.Prefecture, c.City, c.Street, c.Building}
	filled := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, " ")
}

// CustomerAge computes the customer's age in whole years as of asOf.
// Unknown birth dates yield 0, matching the snapshot table default.
func CustomerAge(c *models.Customer, asOf time.Time) int {
	if c == nil || c.BirthDate == nil {
		return 0
	}
	b := *c.BirthDate
	age := asOf.Year() - b.Year()
	// Birthday not reached yet this year.
	if asOf.Month() < b.Month() || (asOf.Month() == b.Month() && asOf.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
