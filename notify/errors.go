package notify

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Common errors.
var (
	// ErrEmptyTopic is returned when a topic identifier is empty or only
	// whitespace.
	ErrEmptyTopic = errors.New("notify: empty topic")
)

// Failure records one subscriber that failed during a publish pass.
type Failure struct {
	// Handle identifies the registration whose callback failed.
	Handle Handle
	// Err is the callback's returned error, or the recovered panic
	// wrapped as an error.
	Err error
}

// DeliveryError reports that one or more subscriber callbacks failed
// during a single Publish. It is returned only after every snapshotted
// subscriber was attempted; Failures preserves delivery order.
type DeliveryError struct {
	Topic    string
	Failures []Failure
}

func (e *DeliveryError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Err.Error()
	}

	return fmt.Sprintf("notify: %d subscriber(s) failed on topic %q:\n- %s",
		len(e.Failures), e.Topic, strings.Join(msgs, "\n- "))
}

// Unwrap exposes the underlying callback errors so errors.Is and
// errors.As see through the aggregate.
func (e *DeliveryError) Unwrap() error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return multierr.Combine(errs...)
}
