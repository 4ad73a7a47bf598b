//go:build debug

package vmath

const debugAssertions = true
