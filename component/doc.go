// Package component defines lifecycle interfaces for restkit infrastructure
// (the HTTP transport and the demo server) and a Registry that starts them
// in order and stops them in reverse.
package component
