// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the settings for one conversion run, merged from flags, the
// config file and VERIZON2SMS_* environment variables.
type Config struct {
	// Database is the Verizon Messages SQLite file to read.
	Database string `mapstructure:"database" yaml:"database"`

	// Output is the backup file to write; "-" writes to stdout.
	Output string `mapstructure:"output" yaml:"output"`

	// Contacts is an optional "number name" text file or number: name YAML file.
	Contacts string `mapstructure:"contacts" yaml:"contacts"`

	// Region is the ISO 3166 code for national-format numbers. Empty means
	// guess from the locale.
	Region string `mapstructure:"region" yaml:"region"`

	// Senders are numbers that always mark a message as sent.
	Senders []string `mapstructure:"sender" yaml:"sender"`

	// PhoneParser selects the normalizer: "libphonenumber" or "digits".
	PhoneParser string `mapstructure:"phone-parser" yaml:"phone-parser"`

	// Verbosity shifts the log level: quiet count minus verbose count.
	Verbosity int `mapstructure:"-" yaml:"-"`
}
