package validators

import "regexp"

// Public booking form phone check. Deliberately permissive: digits plus the
// separators people actually type. The employee console does not re-validate
// numbers entered by staff.
var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

func IsPhoneValid(phone string) bool {
	return phone != "" && phonePattern.MatchString(phone)
}
