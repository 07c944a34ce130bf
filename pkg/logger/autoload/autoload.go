// Package autoload initializes the global logger from the LOG_* environment
// on blank import.
package autoload

import (
	configx "github.com/careloop/techcare-agents/pkg/config"
	logx "github.com/careloop/techcare-agents/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
