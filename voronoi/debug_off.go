//go:build !debug

package voronoi

func logDebugf(format string, v ...interface{}) {}
