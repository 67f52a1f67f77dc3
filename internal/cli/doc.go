// Package cli is responsible for parsing command-line arguments,
// validating user input, and handling process-level concerns like exit
// codes. It translates CLI flags into the application's internal
// configuration, forwarding each dissection option to the interpreter in
// command-line order.
package cli
