package i18n

var english = map[string]string{
	"invalid_type":           "expected {expected}, got {got}",
	"false_schema":           "no value is allowed here",
	"invalid_enum":           "value must be one of {allowed}",
	"const":                  "value must be {expected}",
	"multiple_of":            "{got} is not a multiple of {divisor}",
	"too_small":              "{got} is less than the minimum {min}",
	"too_small_exclusive":    "{got} must be greater than {min}",
	"too_big":                "{got} is greater than the maximum {max}",
	"too_big_exclusive":      "{got} must be less than {max}",
	"too_short":              "length {got} is shorter than {min}",
	"too_long":               "length {got} is longer than {max}",
	"pattern":                "does not match pattern {pattern}",
	"invalid_format":         "not a valid {format}",
	"too_few_items":          "{got} items, want at least {min}",
	"too_many_items":         "{got} items, want at most {max}",
	"unique_items":           "items at {first} and {second} are equal",
	"contains":               "no item matches the contains schema",
	"too_few_contains":       "{got} items match the contains schema, want at least {min}",
	"too_many_contains":      "{got} items match the contains schema, want at most {max}",
	"too_few_properties":     "{got} properties, want at least {min}",
	"too_many_properties":    "{got} properties, want at most {max}",
	"required":               "required property {property} missing",
	"dependent_required":     "property {dependency} is required when {property} is present",
	"unknown_key":            "additional property {property} is not allowed",
	"property_names":         "property name {property} is invalid",
	"additional_items":       "additional item at {index} is not allowed",
	"unevaluated_properties": "unevaluated property {property} is not allowed",
	"unevaluated_items":      "unevaluated item at {index} is not allowed",
	"any_of":                 "value does not match any of the subschemas",
	"one_of":                 "value does not match exactly one subschema",
	"one_of_many":            "value matches subschemas {first} and {second}",
	"not":                    "value must not match the subschema",
	"keyword":                "keyword {keyword} failed",
	"keyword_message":        "keyword {keyword} failed: {message}",
	"duplicate_key":          "duplicate key",
	"max_depth":              "max depth exceeded",
}

var japanese = map[string]string{
	"invalid_type":           "型が不正です ({expected} を期待しましたが {got} でした)",
	"false_schema":           "ここには値を置けません",
	"invalid_enum":           "値は {allowed} のいずれかである必要があります",
	"const":                  "値は {expected} である必要があります",
	"multiple_of":            "{got} は {divisor} の倍数ではありません",
	"too_small":              "{got} は最小値 {min} より小さいです",
	"too_small_exclusive":    "{got} は {min} より大きい必要があります",
	"too_big":                "{got} は最大値 {max} より大きいです",
	"too_big_exclusive":      "{got} は {max} より小さい必要があります",
	"too_short":              "長さ {got} は {min} より短いです",
	"too_long":               "長さ {got} は {max} より長いです",
	"pattern":                "パターン {pattern} に一致しません",
	"invalid_format":         "{format} として不正です",
	"too_few_items":          "要素数 {got} は {min} 未満です",
	"too_many_items":         "要素数 {got} は {max} を超えています",
	"unique_items":           "{first} と {second} の要素が重複しています",
	"contains":               "contains スキーマに一致する要素がありません",
	"too_few_contains":       "contains に一致する要素数 {got} は {min} 未満です",
	"too_many_contains":      "contains に一致する要素数 {got} は {max} を超えています",
	"too_few_properties":     "プロパティ数 {got} は {min} 未満です",
	"too_many_properties":    "プロパティ数 {got} は {max} を超えています",
	"required":               "必須プロパティ {property} が不足しています",
	"dependent_required":     "{property} がある場合 {dependency} は必須です",
	"unknown_key":            "未知のキー {property} は許可されていません",
	"property_names":         "プロパティ名 {property} が不正です",
	"additional_items":       "位置 {index} の追加要素は許可されていません",
	"unevaluated_properties": "未評価のプロパティ {property} は許可されていません",
	"unevaluated_items":      "位置 {index} の未評価要素は許可されていません",
	"any_of":                 "どのサブスキーマにも一致しません",
	"one_of":                 "ちょうど一つのサブスキーマに一致する必要があります",
	"one_of_many":            "サブスキーマ {first} と {second} の両方に一致します",
	"not":                    "サブスキーマに一致してはいけません",
	"keyword":                "キーワード {keyword} の検証に失敗しました",
	"keyword_message":        "キーワード {keyword} の検証に失敗しました: {message}",
	"duplicate_key":          "キーが重複しています",
	"max_depth":              "ネストが深すぎます",
}
