package services

import "errors"

// Sentinel errors returned by the state models. A mutation that targets
// an absent id is never fatal: the model is left unchanged and the
// caller can tell "nothing happened" from "succeeded".
var (
	// ErrItemNotFound is returned by cart mutators when no line item
	// carries the given product id.
	ErrItemNotFound = errors.New("cart item not found")

	// ErrProductNotFound is returned by inventory mutators when the
	// seller inventory holds no product with the given id.
	ErrProductNotFound = errors.New("product not found")

	// ErrSelectionRequired is returned when navigating to the product
	// page without a selected product.
	ErrSelectionRequired = errors.New("no product selected")

	// ErrSellerRequired is returned when entering the seller dashboard
	// before registering as a seller.
	ErrSellerRequired = errors.New("seller registration required")

	// ErrUnknownPage is returned for a navigation target outside the
	// known page set.
	ErrUnknownPage = errors.New("unknown page")
)
