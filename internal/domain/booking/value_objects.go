package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Reference is the customer-facing booking code, e.g. SL-20260831-4F2A9C.
type Reference struct {
	value string
}

func NewReference(now time.Time) Reference {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// Timestamp fallback keeps the reference unique enough for display;
		// the DB unique constraint is the real guard.
		return Reference{value: fmt.Sprintf("SL-%s-%06d", now.Format("20060102"), now.UnixNano()%1000000)}
	}
	return Reference{value: fmt.Sprintf("SL-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(suffix)))}
}

func ReconstructReference(value string) Reference {
	return Reference{value: value}
}

func (r Reference) String() string {
	return r.value
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: strings.TrimSpace(value)}
}

func (n Notes) String() string {
	return n.value
}
