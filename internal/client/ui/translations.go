package ui

import "github.com/dmitrijs2005/aiwallpaper/internal/client/models"

var translations = map[models.Language]map[string]string{
	models.LanguageEnglish: {
		"app_title":                "AI Wallpaper Studio",
		"app_subtitle":             "Create stunning wallpapers with the power of AI",
		"model_name":               "Powered by Gemini",
		"welcome_user":             "Welcome, {name}!",
		"tab_generate":             "Generate",
		"tab_enhance":              "Enhance",
		"prompt_label":             "Prompt",
		"negative_prompt_label":    "Negative prompt",
		"aspect_ratio_label":       "Aspect ratio",
		"style_preset_label":       "Style preset",
		"style_photorealistic":     "Photorealistic",
		"style_digital_art":        "Digital Art",
		"style_anime":              "Anime",
		"style_synthwave":          "Synthwave",
		"button_generating":        "Generating...",
		"button_enhancing":         "Enhancing...",
		"upscaling_message":        "Upscaling to 4K...",
		"button_upscaled":          "Upscaled to 4K",
		"error_title":              "Generation failed",
		"error_unexpected":         "An unexpected error occurred.",
		"history_title":            "Prompt history",
		"history_empty":            "Your generated prompts will appear here.",
		"history_auth_prompt":      "Log in to save your prompt history.",
		"history_avoid_label":      "Avoid",
		"auth_username_label":      "Username",
		"auth_password_label":      "Password",
		"auth_login_done":          "Logged in as {name}.",
		"auth_signup_done":         "Account created. Logged in as {name}.",
		"auth_logout_done":         "Logged out.",
		"auth_required":            "You are not logged in.",
		"upload_ready":             "Image ready to enhance: {file} ({size})",
		"image_ready":              "Wallpaper ready: {mime}, {size}",
		"image_saved":              "Saved to {path}",
		"image_exported":           "Uploaded to {location}",
		"export_disabled":          "Export is not configured (set s3.bucket).",
		"no_image":                 "No image yet. Generate or enhance one first.",
		"theme_change_label":       "Theme",
		"theme_changed":            "Theme set to {theme}.",
		"language_changed":         "Language set to {lang}.",
		"mode_changed":             "Mode: {mode}",
		"value_set":                "{field} set.",
		"unknown_command":          "Unknown command: {cmd}. Type 'help'.",
		"usage":                    "Usage: {usage}",
		"status_anonymous":         "guest",
		"footer_text":              "Built with Gemini. Images are generated by AI.",
		"theme_light":              "Light",
		"theme_dark":               "Dark",
		"theme_amoled":             "AMOLED",
		"theme_neon":               "Neon",
		"theme_glass":              "Glass",
		"theme_aurora":             "Aurora",
		"theme_rose":               "Rose",
		"theme_cyberpunk":          "Cyberpunk",
		"theme_forest":             "Forest",
		"theme_sand":               "Sand",
		"error_unexpected_enhance": "An unexpected error occurred while enhancing the image.",
		"error_unexpected_upscale": "An unexpected error occurred while upscaling.",
	},
	models.LanguageArabic: {
		"app_title":             "استوديو خلفيات الذكاء الاصطناعي",
		"app_subtitle":          "أنشئ خلفيات مذهلة بقوة الذكاء الاصطناعي",
		"model_name":            "مدعوم بواسطة Gemini",
		"welcome_user":          "مرحباً، {name}!",
		"tab_generate":          "إنشاء",
		"tab_enhance":           "تحسين",
		"prompt_label":          "الوصف",
		"negative_prompt_label": "الوصف السلبي",
		"aspect_ratio_label":    "نسبة العرض إلى الارتفاع",
		"style_preset_label":    "النمط",
		"button_generating":     "جارٍ الإنشاء...",
		"button_enhancing":      "جارٍ التحسين...",
		"upscaling_message":     "جارٍ الرفع إلى 4K...",
		"button_upscaled":       "تم الرفع إلى 4K",
		"error_title":           "فشل الإنشاء",
		"error_unexpected":      "حدث خطأ غير متوقع.",
		"history_title":         "سجل الأوصاف",
		"history_empty":         "ستظهر أوصافك هنا.",
		"history_auth_prompt":   "سجّل الدخول لحفظ سجل الأوصاف.",
		"history_avoid_label":   "تجنّب",
		"auth_username_label":   "اسم المستخدم",
		"auth_password_label":   "كلمة المرور",
		"auth_login_done":       "تم تسجيل الدخول باسم {name}.",
		"auth_signup_done":      "تم إنشاء الحساب. تم تسجيل الدخول باسم {name}.",
		"auth_logout_done":      "تم تسجيل الخروج.",
		"auth_required":         "أنت غير مسجّل الدخول.",
		"upload_ready":          "الصورة جاهزة للتحسين: {file} ({size})",
		"image_ready":           "الخلفية جاهزة: {mime}، {size}",
		"image_saved":           "تم الحفظ في {path}",
		"image_exported":        "تم الرفع إلى {location}",
		"no_image":              "لا توجد صورة بعد.",
		"theme_change_label":    "السمة",
		"theme_changed":         "تم تعيين السمة إلى {theme}.",
		"language_changed":      "تم تعيين اللغة إلى {lang}.",
		"mode_changed":          "الوضع: {mode}",
		"unknown_command":       "أمر غير معروف: {cmd}. اكتب 'help'.",
		"status_anonymous":      "زائر",
		"theme_light":           "فاتح",
		"theme_dark":            "داكن",
		"theme_neon":            "نيون",
		"theme_glass":           "زجاجي",
		"theme_aurora":          "الشفق",
		"theme_rose":            "وردي",
		"theme_forest":          "غابة",
		"theme_sand":            "رملي",
	},
	models.LanguageKurdish: {
		"app_title":             "ستۆدیۆی وێنەی پاشبنەمای AI",
		"app_subtitle":          "وێنەی پاشبنەمای سەرنجڕاکێش دروست بکە بە هێزی AI",
		"welcome_user":          "بەخێربێیت، {name}!",
		"tab_generate":          "دروستکردن",
		"tab_enhance":           "باشترکردن",
		"prompt_label":          "وەسف",
		"negative_prompt_label": "وەسفی نەرێنی",
		"aspect_ratio_label":    "ڕێژەی درێژی و پانی",
		"style_preset_label":    "شێواز",
		"button_generating":     "دروست دەکرێت...",
		"button_enhancing":      "باشتر دەکرێت...",
		"error_title":           "دروستکردن سەرکەوتوو نەبوو",
		"error_unexpected":      "هەڵەیەکی چاوەڕواننەکراو ڕوویدا.",
		"history_title":         "مێژووی وەسفەکان",
		"history_empty":         "وەسفەکانت لێرە دەردەکەون.",
		"history_auth_prompt":   "بچۆ ژوورەوە بۆ پاشەکەوتکردنی مێژوو.",
		"auth_username_label":   "ناوی بەکارهێنەر",
		"auth_password_label":   "وشەی نهێنی",
		"auth_login_done":       "چوویتە ژوورەوە وەک {name}.",
		"auth_logout_done":      "چوویتە دەرەوە.",
		"image_saved":           "پاشەکەوت کرا لە {path}",
		"theme_change_label":    "ڕووکار",
		"theme_changed":         "ڕووکار گۆڕدرا بۆ {theme}.",
		"language_changed":      "زمان گۆڕدرا بۆ {lang}.",
		"status_anonymous":      "میوان",
		"theme_light":           "ڕووناک",
		"theme_dark":            "تاریک",
	},
}
