package mstranslator

// textItem is one element of a translate or detect request body.
type textItem struct {
	Text string `json:"Text"`
}

// apiLanguages is the /languages response, restricted to the translation scope.
type apiLanguages struct {
	Translation map[string]apiLanguage `json:"translation"`
}

type apiLanguage struct {
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Dir        string `json:"dir"`
}

// apiTranslateResult is one element of the /translate response array.
type apiTranslateResult struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// apiDetectResult is one element of the /detect response array.
type apiDetectResult struct {
	Language               string  `json:"language"`
	Score                  float64 `json:"score"`
	IsTranslationSupported bool    `json:"isTranslationSupported"`
}

// apiError is the error envelope returned with non-2xx statuses.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
