package forms

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// fieldCheck appends per-field validation messages into errs, first failure
// per field wins.
type fieldCheck struct {
	errs map[string]string
}

func newCheck() *fieldCheck {
	return &fieldCheck{errs: map[string]string{}}
}

func (c *fieldCheck) required(field, value, label string) {
	if _, seen := c.errs[field]; seen {
		return
	}
	if strings.TrimSpace(value) == "" {
		c.errs[field] = label + " is required"
	}
}

func (c *fieldCheck) minLen(field, value string, n int, label string) {
	if _, seen := c.errs[field]; seen {
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		c.errs[field] = label + " must be at least " + strconv.Itoa(n) + " characters"
	}
}

func (c *fieldCheck) email(field, value string) {
	if _, seen := c.errs[field]; seen {
		return
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		c.errs[field] = "enter a valid email address"
	}
}

func (c *fieldCheck) positive(field string, value float64, label string) {
	if _, seen := c.errs[field]; seen {
		return
	}
	if value <= 0 {
		c.errs[field] = label + " must be greater than zero"
	}
}

func (c *fieldCheck) nonNegative(field string, value float64, label string) {
	if _, seen := c.errs[field]; seen {
		return
	}
	if value < 0 {
		c.errs[field] = label + " must not be negative"
	}
}

func (c *fieldCheck) add(field, msg string) {
	if _, seen := c.errs[field]; seen {
		return
	}
	c.errs[field] = msg
}

func (c *fieldCheck) ok() bool {
	return len(c.errs) == 0
}
