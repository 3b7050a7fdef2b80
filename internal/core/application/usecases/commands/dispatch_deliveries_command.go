package commands

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var (
	ErrDispatchDeliveriesCommandIsNotConstructed = errors.New(
		"DispatchDeliveriesCommand must be created via NewDispatchDeliveriesCommand constructor",
	)
)

// DispatchDeliveriesCommand triggers one dispatch pass: every pending delivery
// whose scheduled date has arrived moves to in-transit. Carries no parameters;
// the constructor guard still enforces creation through the factory.
type DispatchDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchDeliveriesCommand creates a dispatch command.
func NewDispatchDeliveriesCommand() (DispatchDeliveriesCommand, error) {
	return DispatchDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveriesCommandIsNotConstructed)
}
