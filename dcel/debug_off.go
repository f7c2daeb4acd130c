//go:build !debug

package dcel

func logDebugf(format string, v ...interface{}) {}
