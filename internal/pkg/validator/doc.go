// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Both the relay endpoint and the enquiry client depend on the Validator
// interface so the two sides enforce the same contact-form rules. The concrete
// implementation wraps go-playground/validator v10 and registers the
// "contact_email" rule.
package validator
