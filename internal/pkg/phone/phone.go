// Package phone приводит номера телефонов к единому виду для сравнения.
package phone

import (
	"regexp"
	"strings"
)

const nationalCode = "998"

var (
	nonDigits   = regexp.MustCompile(`\D`)
	manualShape = regexp.MustCompile(`^\+?[0-9\s\-()]{9,15}$`)
)

// Normalize возвращает каноническую форму номера. Результат используется
// только для сравнения на равенство; некорректный ввод деградирует до строки цифр.
func Normalize(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(digits, nationalCode) && len(digits) == 12:
		return "+" + digits
	case strings.HasPrefix(digits, "8") && len(digits) == 12:
		// ведущая 8 считается ошибочно набранным национальным префиксом
		return "+" + nationalCode + digits[1:]
	case len(digits) == 9:
		return "+" + nationalCode + digits
	case len(digits) == 12:
		return "+" + digits
	default:
		return digits
	}
}

// ValidShape проверяет форму номера, введенного вручную.
func ValidShape(text string) bool {
	return manualShape.MatchString(strings.TrimSpace(text))
}

// Equal сообщает, обозначают ли две строки один и тот же номер.
func Equal(a, b string) bool {
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}
