package botservice

const welcomeText = `🛍️ **مرحباً بك في بوت معلومات منتجات علي إكسبريس!**

أرسل لي رابط أي منتج من علي إكسبريس وسأقوم بإرسال معلومات مفصلة عن المنتج باللغة العربية.

**الميزات:**
• معلومات المنتج مع الصور
• الأسعار بالدولار الأمريكي
• تكلفة الشحن إلى الجزائر
• تقييمات العملاء
• معلومات البائع
• المتغيرات المتاحة (الألوان، الأحجام)

ما عليك سوى إرسال رابط المنتج وسأتولى الباقي! 📦`

const helpText = `🔗 **كيفية استخدام البوت:**

1. انسخ رابط أي منتج من علي إكسبريس
2. ألصق الرابط في المحادثة
3. انتظر حتى أحضر لك المعلومات

**أمثلة على الروابط المدعومة:**
• https://www.aliexpress.com/item/...
• https://a.aliexpress.com/_mNvN...
• https://m.aliexpress.com/item/...

**ملاحظة:** 📋
• يتم عرض الأسعار بالدولار الأمريكي
• تكلفة الشحن محسوبة للجزائر
• المعلومات محدثة في الوقت الفعلي

إذا واجهت أي مشاكل، تأكد من أن الرابط صحيح ومن علي إكسبريس.`

const processingText = "🔄 **جاري تحليل الرابط وجلب معلومات المنتج...**\nيرجى الانتظار قليلاً..."
