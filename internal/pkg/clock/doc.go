// Package clock provides a tiny time abstraction.
//
// The relay stamps every enquiry email with the submission time; depending on
// Clocker instead of calling time.Now() lets tests render that email with a
// deterministic timestamp via Fixed.
package clock
