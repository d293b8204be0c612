package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *Validator
}

func (s *ValidatorTestSuite) SetupTest() {
	s.v = NewValidator()
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

type amountInput struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

type ledgerInput struct {
	Key       string `json:"key" validate:"selection_key"`
	Direction string `json:"direction" validate:"direction_filter"`
}

// TestDecimalAmount tests the decimal_amount rule
func (s *ValidatorTestSuite) TestDecimalAmount() {
	s.NoError(s.v.Struct(amountInput{Amount: "100.50"}))
	s.NoError(s.v.Struct(amountInput{Amount: " -3 "}))

	err := s.v.Struct(amountInput{Amount: "abc"})
	s.Require().Error(err)

	var fieldErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Equal("amount", fieldErrs[0].Field())
	s.Equal("decimal_amount", fieldErrs[0].Tag())
}

// TestSelectionKeyAndDirection tests the ledger lookup rules
func (s *ValidatorTestSuite) TestSelectionKeyAndDirection() {
	s.NoError(s.v.Struct(ledgerInput{Key: "aid:A1", Direction: "in"}))
	s.NoError(s.v.Struct(ledgerInput{Key: "name:Main", Direction: ""}))

	s.Error(s.v.Struct(ledgerInput{Key: "A1", Direction: "all"}))
	s.Error(s.v.Struct(ledgerInput{Key: "oid:", Direction: "all"}))
	s.Error(s.v.Struct(ledgerInput{Key: "aid:A1", Direction: "sideways"}))
}

// TestGetValidator_Singleton tests that the shared instance is reused
func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
	s.NotNil(GetValidator().GetValidate())
}
