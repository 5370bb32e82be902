package authormatch

import "strings"

// translitTable maps accented and non-ASCII Latin-family characters to ASCII
// equivalents, plus a small set of Cyrillic approximations. It is a fixed,
// one-directional, hand-authored table: extending script coverage is a data
// change, not an algorithm change. Characters absent from the table pass
// through unchanged, so scripts outside it are not transliterated at all.
var translitTable = map[rune]string{
	// Latin-1 supplement, lowercase.
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'æ': "ae",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ð': "d", 'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ý': "y", 'ÿ': "y", 'þ': "th", 'ß': "ss",

	// Latin-1 supplement, uppercase.
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Æ': "AE",
	'Ç': "C",
	'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E",
	'Ì': "I", 'Í': "I", 'Î': "I", 'Ï': "I",
	'Ð': "D", 'Ñ': "N",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O", 'Ø': "O",
	'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U",
	'Ý': "Y", 'Þ': "Th",

	// Latin extended-A.
	'ā': "a", 'ă': "a", 'ą': "a", 'Ā': "A", 'Ă': "A", 'Ą': "A",
	'ć': "c", 'ĉ': "c", 'ċ': "c", 'č': "c", 'Ć': "C", 'Ĉ': "C", 'Č': "C",
	'ď': "d", 'đ': "d", 'Ď': "D", 'Đ': "D",
	'ē': "e", 'ĕ': "e", 'ė': "e", 'ę': "e", 'ě': "e",
	'Ē': "E", 'Ė': "E", 'Ę': "E", 'Ě': "E",
	'ğ': "g", 'ģ': "g", 'Ğ': "G", 'Ģ': "G",
	'ī': "i", 'ĭ': "i", 'į': "i", 'ı': "i", 'Ī': "I", 'İ': "I",
	'ķ': "k", 'Ķ': "K",
	'ļ': "l", 'ľ': "l", 'ł': "l", 'Ļ': "L", 'Ľ': "L", 'Ł': "L",
	'ń': "n", 'ņ': "n", 'ň': "n", 'Ń': "N", 'Ň': "N",
	'ō': "o", 'ŏ': "o", 'ő': "o", 'Ō': "O", 'Ő': "O",
	'œ': "oe", 'Œ': "OE",
	'ŕ': "r", 'ř': "r", 'Ŕ': "R", 'Ř': "R",
	'ś': "s", 'ŝ': "s", 'ş': "s", 'š': "s", 'Ś': "S", 'Ş': "S", 'Š': "S",
	'ţ': "t", 'ť': "t", 'Ţ': "T", 'Ť': "T",
	'ū': "u", 'ŭ': "u", 'ů': "u", 'ű': "u", 'ų': "u",
	'Ū': "U", 'Ů': "U", 'Ű': "U",
	'ŵ': "w", 'Ŵ': "W",
	'ŷ': "y", 'Ŷ': "Y", 'Ÿ': "Y",
	'ź': "z", 'ż': "z", 'ž': "z", 'Ź': "Z", 'Ż': "Z", 'Ž': "Z",

	// Cyrillic approximations for the letters that show up in author lists.
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f",
	'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch", 'ы': "y",
	'э': "e", 'ю': "yu", 'я': "ya",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ж': "Zh",
	'З': "Z", 'И': "I", 'Й': "I", 'К': "K", 'Л': "L", 'М': "M", 'Н': "N",
	'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U", 'Ф': "F",
	'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch", 'Ы': "Y",
	'Э': "E", 'Ю': "Yu", 'Я': "Ya",
}

// Transliterate substitutes every character above the ASCII range with its
// ASCII equivalent from the fixed lookup table. Characters not in the table
// are left unchanged. This is a best-effort normalization for loose author
// matching, not a full transliteration system.
func Transliterate(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if r < 128 {
			sb.WriteRune(r)
			continue
		}
		if sub, ok := translitTable[r]; ok {
			sb.WriteString(sub)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
