// Package presenter превращает запись ученика в текст для Telegram (HTML).
// Значения выводятся как есть: ничего не вычисляется и не нормализуется.
package presenter

import (
	"fmt"
	"strings"

	"studentInfoBot/internal/domain/models"

	"golang.org/x/net/html"
)

const (
	Placeholder         = "N/A"
	GradesPlaceholder   = "Ma'lumot yo'q"
	AveragePlaceholder  = "Hisoblash mumkin emas"
	NotFoundPlaceholder = "❌ Ma'lumot topilmadi"

	divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

// Contacts контакты администрации, которые показываются в ответах
type Contacts struct {
	AdminUsername string
	OfficePhone   string
}

// Admin возвращает ник администратора с @
func (c Contacts) Admin() string {
	name := strings.TrimPrefix(strings.TrimSpace(c.AdminUsername), "@")
	if name == "" {
		name = "admin"
	}
	return "@" + html.EscapeString(name)
}

// value возвращает экранированное значение поля или заглушку.
// Заглушки выводятся как есть, как и остальной текст шаблона.
func value(s models.Student, field, fallback string) string {
	if v, ok := s.Field(field); ok {
		return html.EscapeString(v)
	}
	return fallback
}

func fullName(s models.Student) string {
	return value(s, models.FieldFirstName, Placeholder) + " " + value(s, models.FieldLastName, Placeholder)
}

// Profile полная карточка ученика
func Profile(s models.Student) string {
	if s == nil {
		return NotFoundPlaceholder
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🎓 <b>Xush kelibsiz, %s!</b>\n\n", fullName(s))
	b.WriteString(divider + "\n\n")

	b.WriteString("👤 <b>Shaxsiy Ma'lumotlar:</b>\n")
	fmt.Fprintf(&b, "• Ism-familiya: %s\n", fullName(s))
	fmt.Fprintf(&b, "• ID raqam: %s\n", value(s, models.FieldID, Placeholder))
	fmt.Fprintf(&b, "• Telefon: %s\n", value(s, models.FieldPhone, Placeholder))
	fmt.Fprintf(&b, "• Email: %s\n\n", value(s, models.FieldEmail, Placeholder))

	b.WriteString("📚 <b>Ta'lim Ma'lumotlari:</b>\n")
	fmt.Fprintf(&b, "• Guruh: %s\n", value(s, models.FieldGroup, Placeholder))
	fmt.Fprintf(&b, "• Kurs: %s\n", value(s, models.FieldCourse, Placeholder))
	fmt.Fprintf(&b, "• Baholar: %s\n", value(s, models.FieldGrades, Placeholder))
	fmt.Fprintf(&b, "• Davomat: %s%%\n\n", value(s, models.FieldAttendance, Placeholder))

	b.WriteString("💰 <b>Moliyaviy Ma'lumotlar:</b>\n")
	fmt.Fprintf(&b, "• To'lov holati: %s\n", value(s, models.FieldPaymentStatus, Placeholder))
	fmt.Fprintf(&b, "• To'lov miqdori: %s so'm\n", value(s, models.FieldPaymentAmount, Placeholder))
	fmt.Fprintf(&b, "• Keyingi to'lov: %s\n\n", value(s, models.FieldNextPayment, Placeholder))

	b.WriteString("📅 <b>Muhim Sanalar:</b>\n")
	fmt.Fprintf(&b, "• Ro'yxatdan o'tgan: %s\n", value(s, models.FieldEnrolledAt, Placeholder))
	fmt.Fprintf(&b, "• Oxirgi dars: %s\n\n", value(s, models.FieldLastLesson, Placeholder))

	b.WriteString(divider + "\n\n")

	b.WriteString("📊 <b>Statistika:</b>\n")
	fmt.Fprintf(&b, "• Umumiy darslar: %s\n", value(s, models.FieldTotalLessons, Placeholder))
	fmt.Fprintf(&b, "• Qatnashgan darslar: %s\n", value(s, models.FieldAttendedLessons, Placeholder))
	fmt.Fprintf(&b, "• O'rtacha baho: %s", value(s, models.FieldAverageGrade, Placeholder))

	return b.String()
}

// Grades только оценки
func Grades(s models.Student) string {
	if s == nil {
		return NotFoundPlaceholder
	}

	var b strings.Builder

	fmt.Fprintf(&b, "📚 <b>%s %s - Baholar</b>\n\n",
		value(s, models.FieldFirstName, ""),
		value(s, models.FieldLastName, ""),
	)
	b.WriteString(divider + "\n\n")

	fmt.Fprintf(&b, "📊 <b>Barcha baholar:</b> %s\n", value(s, models.FieldGrades, GradesPlaceholder))
	fmt.Fprintf(&b, "⭐ <b>O'rtacha baho:</b> %s\n", value(s, models.FieldAverageGrade, AveragePlaceholder))
	fmt.Fprintf(&b, "📈 <b>Eng yuqori baho:</b> %s\n", value(s, models.FieldHighestGrade, Placeholder))
	fmt.Fprintf(&b, "📉 <b>Eng past baho:</b> %s\n\n", value(s, models.FieldLowestGrade, Placeholder))

	b.WriteString("🎯 <b>Baholash mezonlari:</b>\n")
	b.WriteString("• 5 - A'lo (90-100%)\n")
	b.WriteString("• 4 - Yaxshi (70-89%)\n")
	b.WriteString("• 3 - Qoniqarli (60-69%)\n")
	b.WriteString("• 2 - Qoniqarsiz (0-59%)")

	return b.String()
}

// Payment только финансовая информация
func Payment(s models.Student, contacts Contacts) string {
	if s == nil {
		return NotFoundPlaceholder
	}

	var b strings.Builder

	b.WriteString("💰 <b>To'lov Ma'lumotlari</b>\n\n")
	b.WriteString(divider + "\n\n")

	fmt.Fprintf(&b, "💳 <b>Joriy holat:</b> %s\n", value(s, models.FieldPaymentStatus, Placeholder))
	fmt.Fprintf(&b, "💵 <b>To'lov miqdori:</b> %s so'm\n", value(s, models.FieldPaymentAmount, Placeholder))
	fmt.Fprintf(&b, "📅 <b>Keyingi to'lov:</b> %s\n", value(s, models.FieldNextPayment, Placeholder))
	fmt.Fprintf(&b, "📊 <b>To'langan:</b> %s so'm\n", value(s, models.FieldPaidAmount, Placeholder))
	fmt.Fprintf(&b, "📋 <b>Qarz:</b> %s so'm\n\n", value(s, models.FieldDebt, Placeholder))

	b.WriteString(divider + "\n\n")

	b.WriteString("📞 To'lov bo'yicha savollar uchun:\n")
	if office := strings.TrimSpace(contacts.OfficePhone); office != "" {
		fmt.Fprintf(&b, "🏢 Ofis: %s\n", html.EscapeString(office))
	}
	fmt.Fprintf(&b, "💬 Admin: %s", contacts.Admin())

	return b.String()
}
