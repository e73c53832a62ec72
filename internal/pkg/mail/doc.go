// Package mail defines the contracts for sending email messages.
//
// The main purpose is to keep the rest of the application independent from a
// specific email provider. Use cases work with the Mail interface and Message
// payload; the concrete delivery mechanism (SMTP) is implemented in this
// package.
//
// Header values built from user input (subject, reply-to, display names) are
// stripped of CR/LF before being written so a submitter cannot inject headers.
package mail
