// Package watch surfaces new permit files landing in a directory via
// fsnotify, with per-path debouncing.
package watch
