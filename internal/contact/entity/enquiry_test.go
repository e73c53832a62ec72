package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnquiryDefaults(t *testing.T) {
	var e Enquiry
	assert.Equal(t, "Not provided", e.CompanyOrDefault())
	assert.Equal(t, "Not specified", e.ProductList())
	assert.Equal(t, "No message provided", e.MessageOrDefault())

	e = Enquiry{
		Company:  "Acme Tools",
		Products: []string{"Bellow Covers", "O-Rings"},
		Message:  "Need a quote",
	}
	assert.Equal(t, "Acme Tools", e.CompanyOrDefault())
	assert.Equal(t, "Bellow Covers, O-Rings", e.ProductList())
	assert.Equal(t, "Need a quote", e.MessageOrDefault())
}
