//go:build !semalock_debug

package semalock

const debugAssertions = false
