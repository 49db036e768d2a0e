package domain

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TransactionInput carries the raw, unparsed fields supplied by a caller for create or update.
// Adapters translate their own naming conventions into the canonical enum values before validating.
type TransactionInput struct {
	Type          string `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount        string `json:"amount" validate:"required"`
	Description   string `json:"description" validate:"max=200"`
	FruitName     string `json:"fruitName" validate:"max=100"`
	Quantity      string `json:"quantity"`
	PricePerUnit  string `json:"pricePerUnit"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CASH DIGITAL"`
	Date          string `json:"date" validate:"required"`
}

// MaxAmount caps amounts, quantities and prices so that sums over the whole store stay finite.
const MaxAmount = 1_000_000_000_000

var maxAmount = decimal.NewFromInt(MaxAmount)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"type.required":          "Valid type (INCOME/EXPENSE) is required",
	"type.oneof":             "Valid type (INCOME/EXPENSE) is required",
	"paymentMethod.required": "Valid payment method (CASH/DIGITAL) is required",
	"paymentMethod.oneof":    "Valid payment method (CASH/DIGITAL) is required",
	"amount.required":        "Amount is required",
	"date.required":          "Date is required",
	"description.max":        "Description must be at most 200 characters",
	"fruitName.max":          "Fruit name must be at most 100 characters",
}

// Validate checks the input against the transaction invariants and returns the parsed fields.
// On failure the returned error is a *apperrors.ValidationError listing every violation.
func (in TransactionInput) Validate() (TransactionFields, error) {
	in = in.trimmed()
	verr := apperrors.NewValidationError()

	if err := inputValidator.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return TransactionFields{}, err
		}
		for _, fe := range fieldErrs {
			msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
			if !ok {
				msg = fe.Field() + " is invalid"
			}
			verr.Add(fe.Field(), msg)
		}
	}

	fields := TransactionFields{
		Type:          TransactionType(in.Type),
		Description:   in.Description,
		FruitName:     in.FruitName,
		PaymentMethod: PaymentMethod(in.PaymentMethod),
	}

	if in.Amount != "" {
		amount, err := decimal.NewFromString(in.Amount)
		switch {
		case err != nil:
			verr.Add("amount", "Amount must be a number")
		case amount.GreaterThan(maxAmount):
			verr.Add("amount", "Amount must not exceed "+maxAmount.String())
		default:
			// tiny decimals round to 0 once converted
			if f := amount.InexactFloat64(); f > 0 && !math.IsInf(f, 0) {
				fields.Amount = f
			} else {
				verr.Add("amount", "Amount must be greater than 0")
			}
		}
	}

	if in.Date != "" {
		d, err := ParseDate(in.Date)
		if err != nil {
			verr.Add("date", "Date must be a valid calendar date (YYYY-MM-DD)")
		} else {
			fields.Date = d
		}
	}

	fields.Quantity = parseOptionalNonNegative(verr, "quantity", "Quantity", in.Quantity)
	fields.PricePerUnit = parseOptionalNonNegative(verr, "pricePerUnit", "Price per unit", in.PricePerUnit)

	if verr.HasErrors() {
		return TransactionFields{}, verr
	}
	return fields, nil
}

func (in TransactionInput) trimmed() TransactionInput {
	in.Type = strings.TrimSpace(in.Type)
	in.Amount = strings.TrimSpace(in.Amount)
	in.Description = strings.TrimSpace(in.Description)
	in.FruitName = strings.TrimSpace(in.FruitName)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.PricePerUnit = strings.TrimSpace(in.PricePerUnit)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.Date = strings.TrimSpace(in.Date)
	return in
}

func parseOptionalNonNegative(verr *apperrors.ValidationError, field, label, raw string) *float64 {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add(field, label+" must be a number")
		return nil
	}
	if d.IsNegative() {
		verr.Add(field, label+" must not be negative")
		return nil
	}
	if d.GreaterThan(maxAmount) {
		verr.Add(field, label+" must not exceed "+maxAmount.String())
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// ParseDate parses a YYYY-MM-DD calendar date into 00:00 UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
