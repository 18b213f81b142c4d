// Package memory provides in-process implementations of driven ports: the
// geocode cache used at runtime and a config store used by tests.
package memory
