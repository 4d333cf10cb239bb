package domain

// Language is a translation-provider language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Detection is the result of detecting the language of a text.
type Detection struct {
	Language               string  `json:"language"`
	Score                  float64 `json:"score"`
	IsTranslationSupported bool    `json:"isTranslationSupported"`
}
