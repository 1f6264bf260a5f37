// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct
// tags. The input document may override the routing defaults given here;
// the server section only applies in serve mode.
package config
