package email

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

type Security string

const (
	SecurityNone     Security = "none"
	SecuritySSL      Security = "ssl"
	SecurityStartTLS Security = "tls"
)

func ParseSecurity(s string) (Security, error) {
	switch Security(strings.ToLower(strings.TrimSpace(s))) {
	case SecurityNone:
		return SecurityNone, nil
	case SecuritySSL:
		return SecuritySSL, nil
	case SecurityStartTLS, "":
		return SecurityStartTLS, nil
	}
	return "", fmt.Errorf("unknown security %q", s)
}

// Config is a snapshot of the e-mail settings used to send reports.
type Config struct {
	Formats    []string
	Server     string
	Port       string
	Security   Security
	User       string
	Password   string
	Recipients string
}

var (
	ErrNoServer     = errors.New("SMTP server is empty")
	ErrNoUser       = errors.New("user is empty")
	ErrNoRecipients = errors.New("no recipients")
	ErrNoFormats    = errors.New("no report format selected")
)

// RecipientList splits Recipients on commas and semicolons, dropping blanks.
func (c Config) RecipientList() []string {
	fields := strings.FieldsFunc(c.Recipients, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// PortNumber parses Port. It fails outside 1..65535.
func (c Config) PortNumber() (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil {
		return 0, fmt.Errorf("port %q: not a number", c.Port)
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("port %d: out of range", p)
	}
	return p, nil
}

// Validate returns every problem that keeps reports from being sent, joined.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server) == "" {
		errs = append(errs, ErrNoServer)
	}
	if _, err := c.PortNumber(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.User) == "" {
		errs = append(errs, ErrNoUser)
	}
	rcpts := c.RecipientList()
	if len(rcpts) == 0 {
		errs = append(errs, ErrNoRecipients)
	}
	for _, r := range rcpts {
		if _, err := mail.ParseAddress(r); err != nil {
			errs = append(errs, fmt.Errorf("recipient %q: %w", r, err))
		}
	}
	if len(c.Formats) == 0 {
		errs = append(errs, ErrNoFormats)
	}
	return errors.Join(errs...)
}

func (c Config) IsValid() bool { return c.Validate() == nil }
