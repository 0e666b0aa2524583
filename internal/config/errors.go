package config

import "go.llib.dev/frameless/pkg/errorkit"

const ErrInvalidConfig errorkit.Error = "invalid configuration"
