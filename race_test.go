//go:build race

package arraystring_test

const raceEnabled = true
