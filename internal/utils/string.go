package utils

// FormatValue подставляет N/A вместо незаполненных значений сборки.
func FormatValue(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
