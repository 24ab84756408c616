package http

import (
	"net/mail"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

// invalidDataError wraps field violations into a single EInvalid error that
// the error handler renders as a 400 with structured details.
func invalidDataError(violations []errors.Violation) *errors.Error {
	return &errors.Error{
		Code:    errors.EInvalid,
		Msg:     "invalid data",
		Details: violations,
	}
}

// validateAddress checks the required fields of an embedded address. The
// field parameter prefixes every violation so nested addresses stay
// distinguishable in the response.
func validateAddress(field string, a *logiflow.Address) []errors.Violation {
	var violations []errors.Violation
	if a.Street == "" {
		violations = append(violations, errors.Violation{Field: field + ".street", Msg: "street is required"})
	}
	if a.Number == "" {
		violations = append(violations, errors.Violation{Field: field + ".number", Msg: "number is required"})
	}
	if a.Neighborhood == "" {
		violations = append(violations, errors.Violation{Field: field + ".neighborhood", Msg: "neighborhood is required"})
	}
	if a.City == "" {
		violations = append(violations, errors.Violation{Field: field + ".city", Msg: "city is required"})
	}
	if len(a.State) < 2 {
		violations = append(violations, errors.Violation{Field: field + ".state", Msg: "state is required"})
	}
	if len(a.ZipCode) < 5 {
		violations = append(violations, errors.Violation{Field: field + ".zipCode", Msg: "zip code is invalid"})
	}
	if a.Country == "" {
		violations = append(violations, errors.Violation{Field: field + ".country", Msg: "country is required"})
	}
	return violations
}

// validEmail reports whether v parses as a single RFC 5322 address.
func validEmail(v string) bool {
	_, err := mail.ParseAddress(v)
	return err == nil
}
