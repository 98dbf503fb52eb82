package constraint

import (
	"github.com/go-playground/locales"
	ut "github.com/go-playground/universal-translator"
)

// Translation keys registered on the engine translator.
const (
	msgNotBlank      = "not_blank"
	msgEmail         = "email"
	msgLengthMin     = "length_min"
	msgLengthMax     = "length_max"
	msgLengthExact   = "length_exact"
	msgCharacter     = "character"
	msgType          = "type"
	msgURL           = "url"
	msgUUID          = "uuid"
	msgChoice        = "choice"
	msgRangeBetween  = "range_between"
	msgRangeMin      = "range_min"
	msgRangeMax      = "range_max"
	msgRangeNotValid = "range_not_valid"
	msgInvalid       = "invalid"
)

var enMessages = []struct {
	key  string
	text string
}{
	{msgNotBlank, "This value should not be blank."},
	{msgEmail, "This value is not a valid email address."},
	{msgLengthMin, "This value is too short. It should have {0} or more."},
	{msgLengthMax, "This value is too long. It should have {0} or less."},
	{msgLengthExact, "This value should have exactly {0}."},
	{msgType, "This value should be of type {0}."},
	{msgURL, "This value is not a valid URL."},
	{msgUUID, "This value is not a valid UUID."},
	{msgChoice, "The value you selected is not a valid choice."},
	{msgRangeBetween, "This value should be between {0} and {1}."},
	{msgRangeMin, "This value should be {0} or more."},
	{msgRangeMax, "This value should be {0} or less."},
	{msgRangeNotValid, "This value should be a valid number."},
	{msgInvalid, "This value is not valid."},
}

func registerEnMessages(trans ut.Translator) error {
	for _, m := range enMessages {
		if err := trans.Add(m.key, m.text, true); err != nil {
			return err
		}
	}

	if err := trans.AddCardinal(msgCharacter, "{0} character", locales.PluralRuleOne, true); err != nil {
		return err
	}

	return trans.AddCardinal(msgCharacter, "{0} characters", locales.PluralRuleOther, true)
}
