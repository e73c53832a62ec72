// Package commands defines the enquiry CLI.
//
// Commands
//
//   - enquiry          Open the interactive enquiry form (default)
//   - enquiry send     Submit an enquiry from flags, for scripts
//   - enquiry products List the product catalog
//
// The root command loads the optional config file, builds the catalog and the
// relay client, and sets up logging before any subcommand runs. Logs go to
// --log-file or are discarded so they never draw over the form.
package commands
