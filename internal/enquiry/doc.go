// Package enquiry holds the client side of the contact form: a dual-list
// product selector, the form fields, and the controller that submits the form
// to the relay and tracks the status shown to the user.
//
// A Session ties these together for one user. Catalogs are immutable and are
// passed in at construction so different sessions may offer different products.
//
// None of the types are safe for concurrent mutation except Controller, whose
// status is also updated from its auto-hide timer.
package enquiry
