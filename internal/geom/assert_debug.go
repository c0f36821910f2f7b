//go:build debug

package geom

func contractViolation(msg string) { panic("geom: " + msg) }
