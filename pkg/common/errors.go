package common

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrorCollector gathers several errors so they can be reported at once.
type ErrorCollector struct {
	errs []error
}

func (c *ErrorCollector) New(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

func (c *ErrorCollector) Add(text string) {
	c.New(errors.New(text))
}

func (c *ErrorCollector) Addf(format string, args ...interface{}) {
	c.New(errors.Errorf(format, args...))
}

func (c *ErrorCollector) HasErrors() bool {
	return len(c.errs) > 0
}

func (c *ErrorCollector) Combine() error {
	if c.HasErrors() {
		return errors.New(c.String())
	}
	return nil
}

func (c *ErrorCollector) String() string {
	msgs := make([]string, 0, len(c.errs))
	for _, err := range c.errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
