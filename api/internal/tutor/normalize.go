package tutor

import (
	"bytes"
	"regexp"
	"strings"
)

// LoneDollarPolicy определяет, что делать с одиночным "$" на отдельной строке.
// Модели иногда открывают/закрывают выключную формулу голым "$" вместо "$$";
// в проде встречались оба варианта обработки.
type LoneDollarPolicy int

const (
	// LoneDollarPromote складывает span между одиночными "$"-строками в
	// полноценный $$-блок.
	LoneDollarPromote LoneDollarPolicy = iota
	// LoneDollarDrop просто удаляет паразитную строку.
	LoneDollarDrop
)

// DefaultLoneDollarPolicy — политика по умолчанию; закреплена тестами.
const DefaultLoneDollarPolicy = LoneDollarPromote

var (
	reTrailingWS = regexp.MustCompile(`(?m)[ \t]+$`)
	reBlankRun   = regexp.MustCompile(`\n{4,}`)
)

// Normalize приводит сырой ответ модели к каноническому виду:
// инлайн-формулы как $...$, выключные как $$-блок на отдельных строках,
// code fences удаляются целиком вместе с содержимым. Никогда не падает:
// несбалансированные разделители остаются как есть.
// Повторная нормализация даёт тот же текст.
func Normalize(raw string) string {
	return NormalizeWithPolicy(raw, DefaultLoneDollarPolicy)
}

func NormalizeWithPolicy(raw string, policy LoneDollarPolicy) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = stripFences(text)
	text = reTrailingWS.ReplaceAllString(text, "")
	text = assemble(scanSpans(text, policy))
	text = reBlankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripFences удаляет ```-блоки вместе с содержимым (модель не должна
// заворачивать математику в fences; развернуть их безопасно нельзя).
// Незакрытый fence режет текст до конца.
func stripFences(s string) string {
	for {
		open := strings.Index(s, "```")
		if open < 0 {
			return s
		}
		rest := s[open+3:]
		end := strings.Index(rest, "```")
		if end < 0 {
			return s[:open]
		}
		s = s[:open] + rest[end+3:]
	}
}

type spanKind int

const (
	spanProse spanKind = iota
	spanInline
	spanDisplay
)

type span struct {
	kind spanKind
	text string
}

// scanSpans — один проход слева направо: текст классифицируется на
// прозу, инлайн- и выключную математику. Порядок проверки важен:
// "$$" раньше "$", экранированные скобки раньше голого бэкслеша.
func scanSpans(text string, policy LoneDollarPolicy) []span {
	var spans []span
	var prose strings.Builder
	flush := func() {
		if prose.Len() > 0 {
			spans = append(spans, span{kind: spanProse, text: prose.String()})
			prose.Reset()
		}
	}

	i := 0
	for i < len(text) {
		k := strings.IndexAny(text[i:], `$\`)
		if k < 0 {
			prose.WriteString(text[i:])
			break
		}
		prose.WriteString(text[i : i+k])
		i += k

		switch {
		case strings.HasPrefix(text[i:], "$$"):
			j := strings.Index(text[i+2:], "$$")
			if j < 0 {
				// непарный $$ — оставляем хвост как есть
				prose.WriteString(text[i:])
				i = len(text)
				continue
			}
			flush()
			spans = append(spans, span{kind: spanDisplay, text: text[i+2 : i+2+j]})
			i += 2 + j + 2

		case strings.HasPrefix(text[i:], `\[`):
			j := strings.Index(text[i+2:], `\]`)
			if j < 0 {
				prose.WriteString(`\[`)
				i += 2
				continue
			}
			flush()
			spans = append(spans, span{kind: spanDisplay, text: text[i+2 : i+2+j]})
			i += 2 + j + 2

		case strings.HasPrefix(text[i:], `\(`):
			j := strings.Index(text[i+2:], `\)`)
			if j < 0 {
				prose.WriteString(`\(`)
				i += 2
				continue
			}
			flush()
			spans = append(spans, span{kind: spanInline, text: text[i+2 : i+2+j]})
			i += 2 + j + 2

		case text[i] == '$':
			if isLoneDollarLine(text, i) {
				if policy == LoneDollarDrop {
					i++
					continue
				}
				inner, next, ok := loneDollarSpan(text, i)
				if !ok {
					// пары не нашлось — молча выбрасываем строку-одиночку
					i++
					continue
				}
				flush()
				spans = append(spans, span{kind: spanDisplay, text: inner})
				i = next
				continue
			}
			// инлайн: закрывающий $ должен быть на той же строке
			line := text[i+1:]
			stop := strings.IndexByte(line, '\n')
			if stop < 0 {
				stop = len(line)
			}
			j := strings.IndexByte(line[:stop], '$')
			if j < 0 {
				prose.WriteByte('$')
				i++
				continue
			}
			flush()
			spans = append(spans, span{kind: spanInline, text: line[:j]})
			i += 1 + j + 1

		default: // одиночный '\', не открывающий разделитель
			prose.WriteByte(text[i])
			i++
		}
	}
	flush()
	return spans
}

// isLoneDollarLine — true, если text[i]=='$' и это единственный непробельный
// символ на своей строке.
func isLoneDollarLine(text string, i int) bool {
	for p := i - 1; p >= 0 && text[p] != '\n'; p-- {
		if text[p] != ' ' && text[p] != '\t' {
			return false
		}
	}
	for p := i + 1; p < len(text) && text[p] != '\n'; p++ {
		if text[p] != ' ' && text[p] != '\t' {
			return false
		}
	}
	return true
}

// loneDollarSpan ищет закрывающую границу для одиночной "$"-строки:
// следующую такую же строку либо "$$". next — позиция сразу за границей.
func loneDollarSpan(text string, i int) (inner string, next int, ok bool) {
	j := i + 1
	for {
		k := strings.IndexByte(text[j:], '$')
		if k < 0 {
			return "", 0, false
		}
		p := j + k
		if strings.HasPrefix(text[p:], "$$") {
			return text[i+1 : p], p + 2, true
		}
		if isLoneDollarLine(text, p) {
			return text[i+1 : p], p + 1, true
		}
		j = p + 1
	}
}

// assemble собирает канонический текст: $$-блок всегда начинается с новой
// строки и ничем, кроме перевода строки, от соседей не отделяется;
// пустая математика выбрасывается.
func assemble(spans []span) string {
	var b bytes.Buffer
	trimRight := func() {
		bs := b.Bytes()
		n := len(bs)
		for n > 0 && (bs[n-1] == ' ' || bs[n-1] == '\t' || bs[n-1] == '\n') {
			n--
		}
		b.Truncate(n)
	}

	afterDisplay := false
	for _, sp := range spans {
		switch sp.kind {
		case spanProse:
			t := sp.text
			if afterDisplay {
				t = strings.TrimLeft(t, " \t")
				if t == "" {
					continue
				}
				if t[0] != '\n' {
					b.WriteByte('\n')
				}
				afterDisplay = false
			}
			b.WriteString(t)

		case spanInline:
			t := strings.TrimSpace(sp.text)
			if t == "" {
				continue
			}
			if afterDisplay {
				b.WriteByte('\n')
				afterDisplay = false
			}
			b.WriteString("$")
			b.WriteString(t)
			b.WriteString("$")

		case spanDisplay:
			t := strings.TrimSpace(sp.text)
			if t == "" {
				continue
			}
			trimRight()
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("$$\n")
			b.WriteString(t)
			b.WriteString("\n$$")
			afterDisplay = true
		}
	}
	return b.String()
}
