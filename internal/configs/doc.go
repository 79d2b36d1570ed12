// Package configs manages the passifier user configuration.
//
// Configuration is stored in TOML at the platform config directory
// (~/.config/passifier/config.toml on Linux) or wherever PASSIFIER_CONFIG
// points:
//
//	[store]
//	default = "~/secrets.pass"
//
//	[crypto]
//	cipher = "aes-256-gcm"
//	compression_level = 8
//
//	[directory]
//	exclude = [".git/**"]
//
//	[output]
//	pretty = false
//
// A missing file yields Default(). Loaded files are layered over the defaults,
// so omitted keys keep their default values. Unknown keys and invalid values
// are rejected with ErrInvalidConfig.
package configs
