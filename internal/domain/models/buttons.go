package models

// Надписи кнопок. Они сравниваются с текстом сообщения дословно, вместе с эмодзи.
const (
	ButtonShareContact = "📱 Telefon raqamni yuborish"
	ButtonManualEntry  = "✍️ Qo'lda yozish"

	ButtonProfile     = "📊 Mening ma'lumotlarim"
	ButtonChangePhone = "📞 Telefon o'zgartirish"
	ButtonGrades      = "📚 Baholarim"
	ButtonPayment     = "💰 To'lov holati"
	ButtonSchedule    = "📅 Dars jadvali"
	ButtonNews        = "📋 Yangiliklar"
	ButtonHelp        = "❓ Yordam"
	ButtonLogout      = "🚪 Chiqish"
)

// MainMenu раскладка главного меню по строкам
var MainMenu = [][]string{
	{ButtonProfile, ButtonChangePhone},
	{ButtonGrades, ButtonPayment},
	{ButtonSchedule, ButtonNews},
	{ButtonHelp, ButtonLogout},
}
