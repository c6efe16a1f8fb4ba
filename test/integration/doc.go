// Package integration drives the teaspoon-report CLI against snapshot
// fixtures and compares the rendered reports with golden files.
package integration
