package config

import "errors"

// ErrInvalidServerConfigs is returned by [Resolver.ResolveServer] when the
// listen settings are unusable (for example, an empty host or a port outside
// 1..65535).
var ErrInvalidServerConfigs = errors.New("invalid server configuration")
