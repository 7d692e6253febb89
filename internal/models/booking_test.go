package models

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePaymentReference_Pattern(t *testing.T) {
	pattern := regexp.MustCompile(`^RHB-\d{14}-[A-Z0-9]{8}$`)

	var b Booking
	ref := b.GeneratePaymentReference()

	assert.Equal(t, ref, b.PaymentReference)
	assert.Regexp(t, pattern, ref)
	assert.True(t, strings.HasPrefix(ref, PaymentReferencePrefix+"-"))
}

func TestGeneratePaymentReference_UniquePerAttempt(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		var b Booking
		ref := b.GeneratePaymentReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestCustomerName(t *testing.T) {
	b := Booking{FirstName: "Ama", LastName: "Mensah"}
	assert.Equal(t, "Ama Mensah", b.CustomerName())
}
