package repo

import "errors"

// ErrProductNotFound is returned when a product id is unknown.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantity is returned when a movement quantity is zero or negative.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// ErrProductHasMovements is returned when deleting a product that still has
// purchase, sale or adjustment rows referencing it.
var ErrProductHasMovements = errors.New("product has movement history")

// ErrUserNotFound is returned when a username is unknown.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when registering an existing username.
var ErrDuplicateUsername = errors.New("username already exists")
