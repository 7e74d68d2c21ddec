// Package validation valida los formularios antes de llamar al backend.
// Los predicados son puros: nunca hacen panic ni tocan la red.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// space mismo conjunto que \s en el navegador; \s de RE2 sólo cubre ASCII (sin \v).
const space = `\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	phoneRe      = regexp.MustCompile(`^3[0-9]{9}$`)
	whitespaceRe = regexp.MustCompile(`[` + space + `]`)
	emailRe      = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	nameRe       = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ` + space + `]+$`)
)

// dateLayouts formatos aceptados para fechas de agendamiento; YYYY-MM-DD se interpreta en hora local.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Phone celular colombiano: 10 dígitos empezando por 3, espacios ignorados.
func Phone(s string) bool {
	return phoneRe.MatchString(whitespaceRe.ReplaceAllString(s, ""))
}

// Date la fecha es hoy o posterior.
func Date(s string) bool {
	return DateAt(s, time.Now())
}

// DateAt igual que Date con el reloj explícito.
func DateAt(s string, now time.Time) bool {
	d, ok := parseDate(s, now.Location())
	if !ok {
		return false
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// DateNotTooFar la fecha no supera tres meses calendario desde ahora.
func DateNotTooFar(s string) bool {
	return DateNotTooFarAt(s, time.Now())
}

// DateNotTooFarAt igual que DateNotTooFar con el reloj explícito.
func DateNotTooFarAt(s string, now time.Time) bool {
	d, ok := parseDate(s, now.Location())
	if !ok {
		return false
	}
	return !d.After(now.AddDate(0, 3, 0))
}

// Email forma x@y.z sin espacios.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Name al menos 3 caracteres (sin contar espacios extremos) y sólo letras en español y espacios.
func Name(s string) bool {
	t := strings.TrimFunc(s, isSpace)
	return utf8.RuneCountInString(t) >= 3 && nameRe.MatchString(t)
}

// Address al menos 10 caracteres sin contar espacios extremos.
func Address(s string) bool {
	return utf8.RuneCountInString(strings.TrimFunc(s, isSpace)) >= 10
}

// Password al menos 6 caracteres.
func Password(s string) bool {
	return utf8.RuneCountInString(s) >= 6
}

// Required no vacío después de recortar espacios.
func Required(s string) bool {
	return strings.TrimFunc(s, isSpace) != ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
