// Package log wraps zerolog behind a small global configuration surface.
//
// The CLI calls Configure once flags are parsed; packages obtain child
// loggers via WithComponent.
package log
