package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "format").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return "型が一致しません"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "invalid_trait":
			return "トレイトが不正です"
		case "missing_location":
			return "ロケーショントレイトが不足しています"
		case "missing_path_param":
			return "パスパラメータが不足しています"
		case "invalid_format":
			return "形式が不正です"
		case "parse_error":
			return "解析エラー"
		case "unknown_shape":
			return "未知のシェイプです"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			return "type mismatch"
		case "duplicate_field":
			return "duplicate field"
		case "invalid_trait":
			return "invalid trait"
		case "missing_location":
			return "location trait missing"
		case "missing_path_param":
			return "path parameter missing"
		case "invalid_format":
			return "invalid format"
		case "parse_error":
			return "parse error"
		case "unknown_shape":
			return "unknown shape"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T returns the message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
