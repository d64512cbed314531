package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeInvalidReference = "INVALID_REFERENCE"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeVariantNotFound  = "VARIANT_NOT_FOUND"
	ErrCodeReviewNotFound   = "REVIEW_NOT_FOUND"
	ErrCodeDuplicateSlug    = "DUPLICATE_SLUG"
	ErrCodeCategoryInUse    = "CATEGORY_IN_USE"
	ErrCodeProductOrdered   = "PRODUCT_ORDERED"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeBadCredentials   = "BAD_CREDENTIALS"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business error safe to surface to end users.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Checkout validation errors. Messages are returned verbatim to the caller,
// first violation wins.
var (
	ErrNameTooShort     = NewDomainError(ErrCodeValidation, "Full name must be at least 2 characters.")
	ErrInvalidEmail     = NewDomainError(ErrCodeValidation, "Please provide a valid email address.")
	ErrInvalidPhone     = NewDomainError(ErrCodeValidation, "Please provide a valid phone number.")
	ErrAddressTooShort  = NewDomainError(ErrCodeValidation, "Please provide a complete shipping address.")
	ErrEmptyCart        = NewDomainError(ErrCodeValidation, "Your cart is empty.")
	ErrInvalidQuantity  = NewDomainError(ErrCodeValidation, "Item quantity must be at least 1.")
	ErrMissingVariant   = NewDomainError(ErrCodeValidation, "Each cart item must reference a variant.")
	ErrTotalMismatch    = NewDomainError(ErrCodeValidation, "Order total does not match the items in your cart.")
	ErrInvalidReference = NewDomainError(ErrCodeInvalidReference, "Please enter a valid 8-character order reference.")
)

// Review validation errors.
var (
	ErrReviewNameTooShort = NewDomainError(ErrCodeValidation, "Name must be at least 2 characters.")
	ErrRatingTooLow       = NewDomainError(ErrCodeValidation, "Rating must be at least 1.")
	ErrRatingTooHigh      = NewDomainError(ErrCodeValidation, "Rating cannot exceed 5.")
	ErrCommentTooShort    = NewDomainError(ErrCodeValidation, "Comment must be at least 5 characters.")
)

// Lookup and admin errors.
var (
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "No matching order found.")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found.")
	ErrCategoryNotFound = NewDomainError(ErrCodeCategoryNotFound, "Category not found.")
	ErrVariantNotFound  = NewDomainError(ErrCodeVariantNotFound, "Variant not found.")
	ErrReviewNotFound   = NewDomainError(ErrCodeReviewNotFound, "Review not found.")
	ErrDuplicateSlug    = NewDomainError(ErrCodeDuplicateSlug, "This slug is already in use. Slugs must be unique.")
	ErrCategoryInUse    = NewDomainError(ErrCodeCategoryInUse, "Failed to delete category. It might be linked to existing products.")
	ErrProductOrdered   = NewDomainError(ErrCodeProductOrdered, "This product has been ordered and cannot be deleted. Deactivate it instead.")
	ErrInvalidStatus    = NewDomainError(ErrCodeInvalidStatus, "Unknown order status.")
	ErrBadCredentials   = NewDomainError(ErrCodeBadCredentials, "Invalid email or password.")
	ErrMissingFields    = NewDomainError(ErrCodeValidation, "Please fill in all required fields.")
)

// ErrorResponse represents a standardised error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
