package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	speedRe    = regexp.MustCompile(`^(\d+)(M|Mbit|G|Gbit)$`)
	durationRe = regexp.MustCompile(`^(\d+) days (\d+):(\d+):(\d+)$`)
	macDigits  = regexp.MustCompile(`^[0-9a-f]{12}$`)
)

// ParseSpeed converts a device speed string to a numeric magnitude in
// megabits. "100M" -> 100, "1G" -> 1000. Unknown or absent speeds
// collapse to 0. The device renders the same speed with and without the
// "bit" suffix depending on the command, so both forms are accepted.
func ParseSpeed(speed string) int {
	m := speedRe.FindStringSubmatch(strings.TrimSpace(speed))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if m[2] == "G" || m[2] == "Gbit" {
		return n * 1000
	}
	return n
}

// ParseDaysHMS converts a "D days H:M:S" duration to seconds. Returns
// -1.0 when the string does not match, distinguishing "unknown" from
// "zero elapsed".
func ParseDaysHMS(s string) float64 {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return -1.0
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	mins, _ := strconv.Atoi(m[3])
	secs, _ := strconv.Atoi(m[4])
	return float64(secs + mins*60 + hours*3600 + days*86400)
}

// ParseAge coerces an age column to seconds. "None", negative, or
// unparsable values collapse to 0.
func ParseAge(s string) float64 {
	age, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || age < 0 {
		return 0
	}
	return age
}

// CanonicalMAC normalizes a MAC address to lowercase colon form.
// Accepts the device's dotted form (abcd.ef01.2345), colon form, and
// hyphen form. Returns an error for anything that is not 48 bits.
func CanonicalMAC(mac string) (string, error) {
	hex := strings.ToLower(mac)
	for _, sep := range []string{".", ":", "-"} {
		hex = strings.ReplaceAll(hex, sep, "")
	}
	if !macDigits.MatchString(hex) {
		return "", fmt.Errorf("%w: bad MAC address %q", ErrInvalidInput, mac)
	}
	parts := make([]string, 6)
	for i := 0; i < 6; i++ {
		parts[i] = hex[i*2 : i*2+2]
	}
	return strings.Join(parts, ":"), nil
}

// Atoi converts s to an int, returning def when conversion fails.
// Extraction emits empty strings for fields a firmware variant did not
// render, so a forgiving conversion is used throughout the reconcilers.
func Atoi(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
