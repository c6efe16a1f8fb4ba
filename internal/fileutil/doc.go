// Package fileutil shortens file paths for display in reports.
//
// Trace frames reported by a browser test runner carry absolute paths or
// dev-server URLs. Shortener turns them into paths relative to the project
// root when possible:
//
//	s := fileutil.NewShortener("/home/ci/app")
//	s.Shorten("/home/ci/app/spec/javascripts/math_spec.js") // "spec/javascripts/math_spec.js"
//	s.Shorten("http://127.0.0.1:3000/assets/app.js")        // "/assets/app.js"
//	s.Shorten("/usr/lib/node/runner.js")                    // unchanged
package fileutil
