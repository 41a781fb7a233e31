package models

import "strings"

// Заголовки колонок таблицы с данными учеников
const (
	FieldFirstName       = "Ism"
	FieldLastName        = "Familiya"
	FieldID              = "ID"
	FieldPhone           = "Telefon"
	FieldEmail           = "Email"
	FieldGroup           = "Guruh"
	FieldCourse          = "Kurs"
	FieldGrades          = "Baholar"
	FieldAttendance      = "Davomat"
	FieldPaymentStatus   = "Tolov_holati"
	FieldPaymentAmount   = "Tolov_miqdori"
	FieldNextPayment     = "Keyingi_tolov"
	FieldPaidAmount      = "Tolangan_summa"
	FieldDebt            = "Qarz"
	FieldEnrolledAt      = "Royxat_sana"
	FieldLastLesson      = "Oxirgi_dars"
	FieldTotalLessons    = "Umumiy_darslar"
	FieldAttendedLessons = "Qatnashgan_darslar"
	FieldAverageGrade    = "Ortacha_baho"
	FieldHighestGrade    = "Eng_yuqori_baho"
	FieldLowestGrade     = "Eng_past_baho"
)

// Student представляет одну строку таблицы: заголовок колонки -> значение.
// Значения хранятся как есть, без нормализации.
type Student map[string]string

// Field возвращает значение колонки и признак того, что оно непустое
func (s Student) Field(name string) (string, bool) {
	v, ok := s[name]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Get возвращает значение колонки или fallback, если значения нет
func (s Student) Get(name, fallback string) string {
	if v, ok := s.Field(name); ok {
		return v
	}
	return fallback
}

// FullName возвращает имя и фамилию через пробел
func (s Student) FullName() string {
	return strings.TrimSpace(s[FieldFirstName] + " " + s[FieldLastName])
}

// Clone возвращает независимую копию записи
func (s Student) Clone() Student {
	if s == nil {
		return nil
	}
	c := make(Student, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
