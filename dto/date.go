package dto

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/driveline/rental-backend/models"
)

// Dates travel as plain "2006-01-02" strings on the wire.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrap(models.BadParameterError, err.Error())
	}
	return date, nil
}

func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	date, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
