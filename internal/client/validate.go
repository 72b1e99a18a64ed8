package client

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^0\d{9}$`)

// ItemForm is the local form state a page holds before submitting a create.
// The validation tags encode the one logical policy every page applies.
type ItemForm struct {
	Name           string  `validate:"required"`
	Location       string  `validate:"required,oneof=Vault Carton/Shelf Drawer Box Cabinet Locker Tray Rack Bin Compartment Container Barrel"`
	Quantity       int     `validate:"gte=0"`
	PurchasedPrice float64 `validate:"gte=0"`
	SellPrice      float64 `validate:"gte=0,gtefield=PurchasedPrice"`
	SupplierName   string  `validate:"required"`
	SupplierPhone  string  `validate:"required,supplierphone"`
	SupplierEmail  string  `validate:"required,email"`
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors blocks a submission before it reaches the network.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("supplierphone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	return v
}

// ValidateForm checks the form against the shared policy and returns
// ValidationErrors describing every violated rule, or nil.
func ValidateForm(form ItemForm) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldErrorMessage(fe)})
	}
	return out
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name is required"
	case "Location":
		if fe.Tag() == "oneof" {
			return "Location must be one of the known storage locations"
		}
		return "Location is required"
	case "Quantity":
		return "Quantity must be a non-negative number"
	case "PurchasedPrice":
		return "Purchased Price must be a non-negative number"
	case "SellPrice":
		return "Sell Price must be equal to or greater than Purchased Price"
	case "SupplierName":
		return "Supplier Name is required"
	case "SupplierPhone":
		return "Supplier Phone must start with 0 and be a 10-digit number"
	case "SupplierEmail":
		if fe.Tag() == "email" {
			return "Please enter a valid email address"
		}
		return "Supplier email is required"
	default:
		return fe.Field() + " is invalid"
	}
}
