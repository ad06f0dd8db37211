package domain

// ShippingMethod selects how an order is delivered.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// IsValid checks if the shipping method is valid
func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingStandard, ShippingExpress:
		return true
	default:
		return false
	}
}

// CheckoutStep represents the current step of the checkout flow
type CheckoutStep string

const (
	StepCart     CheckoutStep = "cart"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
)

// IsValid checks if the checkout step is valid
func (s CheckoutStep) IsValid() bool {
	switch s {
	case StepCart, StepShipping, StepPayment:
		return true
	default:
		return false
	}
}

// Number returns the 1-based position of the step, for step indicators.
func (s CheckoutStep) Number() int {
	switch s {
	case StepCart:
		return 1
	case StepShipping:
		return 2
	case StepPayment:
		return 3
	default:
		return 0
	}
}

// CanTransitionTo checks if a step transition is valid. Forward moves are
// strictly one step at a time; backward moves are always allowed.
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case StepCart:
		return next == StepShipping
	case StepShipping:
		return next == StepPayment || next == StepCart
	case StepPayment:
		return next == StepShipping || next == StepCart
	default:
		return false
	}
}
