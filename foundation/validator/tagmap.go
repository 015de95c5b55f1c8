package validator

var tagMap = map[string]string{
	"required":         "required",
	"omitempty":        "optional",
	"iban":             "invalid_iban",
	"len":              "invalid_length",
	"max":              "too_long",
	"min":              "too_short",
	"alphanum":         "only_letters_and_digits_allowed",
	"uppercase":        "must_be_uppercase",
	"iso3166_1_alpha2": "invalid_country",
}

// TagMap returns a copy of the tag -> reason code table, suitable for
// errors.FromPlayground.
func TagMap() map[string]string {
	out := make(map[string]string, len(tagMap))
	for k, c := range tagMap {
		out[k] = c
	}
	return out
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
