package bot

import (
	"fmt"

	"golang.org/x/net/html"
)

func welcomeText(firstName string) string {
	return fmt.Sprintf(`🎓 <b>O'quvchilar Ma'lumotlari Botiga Xush Kelibsiz!</b>

Salom, %s!

Bu bot orqali siz o'zingiz haqingizdagi barcha ma'lumotlarni oson ko'rishingiz mumkin:
• 📊 Baholar va o'rtacha ball
• 💰 To'lov holati
• 📅 Dars jadvali
• 📞 Bog'lanish ma'lumotlari

🔐 <b>Xavfsizlik uchun telefon raqamingizni tasdiqlang:</b>

Telefon raqamingizni yuboring yoki pastdagi tugmani bosing 👇`, html.EscapeString(firstName))
}

const manualEntryText = `📱 Telefon raqamingizni kiriting:

📝 <b>Formatlar:</b>
• +998901234567
• 998901234567
• 901234567

❌ Bekor qilish uchun /start ni bosing`

const invalidShapeText = "❌ Noto'g'ri format!\n\n" +
	"📝 To'g'ri format: +998901234567\n" +
	"Qaytadan kiriting:"

func contactSuccessText(fullName string) string {
	return fmt.Sprintf("✅ Muvaffaqiyatli tasdiqlandi!\nXush kelibsiz, %s!", fullName)
}

const manualSuccessText = "✅ Muvaffaqiyatli tasdiqlandi!"

func contactNotFoundText(phone, admin string) string {
	return fmt.Sprintf(`❌ Kechirasiz, %s raqami bizning tizimda ro'yxatdan o'tmagan.

📞 Iltimos, quyidagilarni tekshiring:
• To'g'ri telefon raqam kiritdingizmi?
• Ro'yxatdan o'tganingizga ishonchingiz komilmi?

❓ Yordam kerak bo'lsa, admin bilan bog'laning: %s

🔄 Qaytadan urinish uchun /start ni bosing.`, html.EscapeString(phone), admin)
}

func manualNotFoundText(phone, admin string) string {
	return fmt.Sprintf(`❌ %s raqami tizimda topilmadi.

🔄 Boshqa raqam bilan urinib ko'ring yoki admin bilan bog'laning.

📞 Admin: %s
🏠 Bosh sahifaga qaytish: /start`, html.EscapeString(phone), admin)
}

func backendUnavailableText(admin string) string {
	return fmt.Sprintf(`⚠️ Hozircha ma'lumotlar bazasiga ulanib bo'lmadi.

⏳ Iltimos, birozdan so'ng qaytadan urinib ko'ring.
📞 Muammo davom etsa, admin bilan bog'laning: %s`, admin)
}

const recordMissingText = "❌ Ma'lumot topilmadi. Qaytadan /start ni bosing."

func helpText(admin string) string {
	return fmt.Sprintf(`❓ <b>Yordam</b>

🔐 Kirish uchun /start ni bosing va telefon raqamingizni yuboring.

📋 <b>Menyu:</b>
• 📊 Mening ma'lumotlarim - to'liq ma'lumotlar
• 📚 Baholarim - baholar va o'rtacha baho
• 💰 To'lov holati - to'lov ma'lumotlari
• 📞 Telefon o'zgartirish - boshqa raqam bilan kirish
• 🚪 Chiqish - tizimdan chiqish

💬 Savollar bo'yicha admin: %s`, admin)
}

const comingSoonText = "🛠 Bu bo'lim hozircha ishlab chiqilmoqda.\n\nTez orada foydalanishingiz mumkin bo'ladi!"

const logoutText = "👋 Tizimdan muvaffaqiyatli chiqdingiz!\n\n" +
	"🔄 Qaytadan kirish uchun /start ni bosing."

const remindAuthText = "🔐 Avval telefon raqamingizni tasdiqlang!\n\n" +
	"Boshlash uchun /start ni bosing."

const notUnderstoodText = "🤔 Tushunmadim. Pastdagi tugmalardan birini tanlang:"

// ErrorText общий ответ при непредвиденной ошибке обработчика
const ErrorText = "❌ Bot xatolikka duch keldi. Keyinroq urinib ko'ring."
