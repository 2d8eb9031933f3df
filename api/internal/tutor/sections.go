package tutor

import (
	"regexp"
	"strings"
)

// Теги секций из PROMPT_TUTOR: до трёх подсказок и полное решение.
// <SOLUTION> — легаси-алиас, который модели иногда возвращают вместо
// основного тега; он учитывается только при отсутствии <FULL_SOLUTION>.
var (
	reHintTags = [3]*regexp.Regexp{
		tagRe("HINT_1"),
		tagRe("HINT_2"),
		tagRe("HINT_3"),
	}
	reFullSolution  = tagRe("FULL_SOLUTION")
	reSolutionAlias = tagRe("SOLUTION")
)

// tagRe: ленивый, регистронезависимый матч <NAME>...</NAME> через строки.
// Это сознательно НЕ XML-парсер: фиксированный набор невложенных пар тегов.
func tagRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + name + `>(.*?)</` + name + `>`)
}

// Sections — разобранный ответ модели. Hints — плотная последовательность
// непустых подсказок в порядке номеров (пропущенный HINT_2 не оставляет
// дырки). Solution == "" означает отсутствие решения.
type Sections struct {
	Hints    []string
	Solution string
}

func (s Sections) Empty() bool {
	return len(s.Hints) == 0 && s.Solution == ""
}

// ExtractSections вытаскивает секции из (нормализованного) текста.
// Никогда не возвращает ошибку: ответ без единого тега — легитимный
// вырожденный результат, "показывать нечего".
func ExtractSections(text string) Sections {
	var out Sections
	for _, re := range reHintTags {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if h := strings.TrimSpace(m[1]); h != "" {
			out.Hints = append(out.Hints, h)
		}
	}
	if m := reFullSolution.FindStringSubmatch(text); m != nil {
		out.Solution = strings.TrimSpace(m[1])
	} else if m := reSolutionAlias.FindStringSubmatch(text); m != nil {
		out.Solution = strings.TrimSpace(m[1])
	}
	return out
}
