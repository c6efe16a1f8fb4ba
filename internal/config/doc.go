// Package config loads report settings from .teaspoon/report.yaml and merges
// them with command-line flags. Precedence, highest first: flags, config
// file, DefaultConfig.
//
// Example file:
//
//	runner_command: bundle exec teaspoon
//	framework_markers: [mocha, chai, sinon]
//	color: always
//	output: tmp/teaspoon-report.txt
//	lock_timeout: 10s
//	log_level: debug
//	log_dir: tmp/logs
package config
