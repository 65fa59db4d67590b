// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps code settings in a TOML file under the egress home
// directory. Dotted keys such as "code.sprinklered" are written as TOML
// tables and flattened back on load.
package file
