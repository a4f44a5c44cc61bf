package refdata

import "strings"

// Currency описывает запись справочника валют.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "CA$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr"},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "MX$"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM"},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱"},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "E£"},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨"},
	{Code: "BDT", Name: "Bangladeshi Taka", Symbol: "৳"},
}

// Currencies возвращает полный справочник валют.
func Currencies() []Currency {
	return currencies
}

// SuggestCurrencies фильтрует валюты по имени или коду; пустой запрос дает
// первые DefaultSuggestions записей.
func SuggestCurrencies(query string) []Currency {
	if strings.TrimSpace(query) == "" {
		return currencies[:DefaultSuggestions]
	}

	term := strings.ToLower(query)
	matched := []Currency{}
	for _, c := range currencies {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Code), term) {
			matched = append(matched, c)
		}
	}
	return matched
}

// CurrencyByCode ищет валюту по коду.
func CurrencyByCode(code string) (Currency, bool) {
	upper := strings.ToUpper(code)
	for _, c := range currencies {
		if c.Code == upper {
			return c, true
		}
	}
	return Currency{}, false
}
