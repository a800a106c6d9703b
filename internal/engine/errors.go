package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrUnknownMetric = errors.New("unknown measurement")
	ErrInvalidStatus = errors.New("invalid project status")
)

// PolicyError reports an unrecognised toggle-off policy name.
type PolicyError struct {
	Name string
}

func (e PolicyError) Error() string {
	return fmt.Sprintf("unknown toggle-off policy %q (want %q or %q)", e.Name, KeepReward, RevokeReward)
}
