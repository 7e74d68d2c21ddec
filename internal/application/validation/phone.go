package validation

import "strings"

// FormatPhone muestra un celular de 10 dígitos como "300 123 4567"; cualquier otro valor se devuelve igual.
func FormatPhone(phone string) string {
	digits := CleanPhone(phone)
	if len(digits) != 10 {
		return phone
	}
	return digits[:3] + " " + digits[3:6] + " " + digits[6:]
}

// CleanPhone deja sólo los dígitos.
func CleanPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
