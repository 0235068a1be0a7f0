//go:build !race

package arraystring_test

const raceEnabled = false
