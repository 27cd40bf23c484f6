package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMinutes is returned for minute values that are neither a
// number nor an "MM:SS" clock.
var ErrInvalidMinutes = errors.New("invalid minutes")

// Minutes is playing time in decimal minutes. It decodes from a JSON number,
// a numeric string, or an "MM:SS" clock string.
type Minutes float64

// Rounded returns the value at storage precision (thousandths of a minute).
func (m Minutes) Rounded() float64 {
	return math.Round(float64(m)*1000) / 1000
}

func (m *Minutes) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseMinutes(s)
		if err != nil {
			return err
		}
		*m = Minutes(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMinutes, string(b))
	}
	*m = Minutes(f)
	return nil
}

// ParseMinutes converts "MM:SS" or a plain number to decimal minutes.
// An empty string is zero minutes.
func ParseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if mm, ss, ok := strings.Cut(s, ":"); ok {
		mins, err := strconv.Atoi(strings.TrimSpace(mm))
		if err != nil || mins < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMinutes, s)
		}
		secs, err := strconv.Atoi(strings.TrimSpace(ss))
		if err != nil || secs < 0 || secs >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMinutes, s)
		}
		return float64(mins) + float64(secs)/60, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMinutes, s)
	}
	return v, nil
}

// FormatMinutes renders decimal minutes as an "M:SS" clock.
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes * 60))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
