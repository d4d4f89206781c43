package validators

import "errors"

// ErrValidation is matched by every rule violation reported by this package.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Rule violations. Their messages are shown to the user as is.
var (
	ErrTitleRequired       = newRuleError("Title is required")
	ErrDestinationRequired = newRuleError("Destination is required")
	ErrStartDateRequired   = newRuleError("Start date is required")
	ErrEndDateRequired     = newRuleError("End date is required")
	ErrEntryDateRequired   = newRuleError("Date is required")
	ErrEndBeforeStart      = newRuleError("End date must be on or after the start date")
	ErrInvalidStatus       = newRuleError("Invalid trip status")
	ErrInvalidMood         = newRuleError("Invalid mood")
	ErrNegativeBudget      = newRuleError("Budget cannot be negative")
	ErrTooManyImages       = newRuleError("You can only upload up to 5 images per memory.")
	ErrNotAnImage          = newRuleError("File must be an image")
	ErrFileTooLarge        = newRuleError("File size must be less than 5MB")
	ErrEmptyFile           = newRuleError("File is empty")
	ErrNoFieldsToUpdate    = newRuleError("At least one field must be provided for update")
)

// ruleError keeps the user-facing message free of the "validation error"
// prefix while still matching ErrValidation.
type ruleError struct {
	msg string
}

func newRuleError(msg string) error {
	return &ruleError{msg: msg}
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Is(target error) bool { return target == ErrValidation }

// Message returns the user-facing text of the first rule violation in err's
// chain.
func Message(err error) (string, bool) {
	var re *ruleError
	if errors.As(err, &re) {
		return re.msg, true
	}
	return "", false
}
