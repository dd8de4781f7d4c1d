// Package logger provides structured logging for restkit using zerolog.
//
// Loggers carry a service name and optional component tag. Fields are
// passed as plain maps so call sites stay free of zerolog types.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("rest")
//	log.Info("request sent", logger.Fields("method", "GET", "path", "/users"))
package logger
