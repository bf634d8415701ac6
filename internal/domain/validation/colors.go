package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

func ValidateSchemeHex(
	prefix string,
	background string,
	foreground1 string,
	foreground2 string,
	foreground3 string,
	highlight string,
	urgent string,
) []string {
	checks := []struct {
		name  string
		value string
	}{
		{"background", background},
		{"foreground_1", foreground1},
		{"foreground_2", foreground2},
		{"foreground_3", foreground3},
		{"highlight", highlight},
		{"urgent", urgent},
	}

	var errs []string
	for _, c := range checks {
		if !IsHexColor(c.value) {
			errs = append(errs, prefix+"."+c.name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
