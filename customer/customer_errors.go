package customer

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")

var ErrInvalidCustomer = errors.New("invalid customer")
