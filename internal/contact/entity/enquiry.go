package entity

import (
	"strings"
	"time"
)

const (
	defaultCompany  = "Not provided"
	defaultProducts = "Not specified"
	defaultMessage  = "No message provided"
)

// Enquiry is a validated contact-form submission on its way to the mailbox.
type Enquiry struct {
	Reference   string
	Name        string
	Email       string
	Phone       string
	Company     string
	Products    []string
	Message     string
	SubmittedAt time.Time
}

// CompanyOrDefault returns the company name, or a placeholder when empty.
func (e Enquiry) CompanyOrDefault() string {
	if e.Company == "" {
		return defaultCompany
	}
	return e.Company
}

// ProductList joins the product names for display.
func (e Enquiry) ProductList() string {
	if len(e.Products) == 0 {
		return defaultProducts
	}
	return strings.Join(e.Products, ", ")
}

// MessageOrDefault returns the free-text message, or a placeholder when empty.
func (e Enquiry) MessageOrDefault() string {
	if e.Message == "" {
		return defaultMessage
	}
	return e.Message
}
