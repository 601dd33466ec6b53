package questiongen

import (
	"fmt"
	"strings"

	"github.com/dayne-app/dayne/internal/i18n"
)

const (
	systemPromptEN = "You are an educational expert. Respond only in valid JSON format. Use only factual information from the provided text."
	systemPromptKZ = "Сіз білім беру сұрақтарын жасайтын мамансыз. Тек дұрыс JSON форматында жауап беріңіз. Мәтіннен дәл ақпаратты пайдаланыңыз."
)

const userPromptEN = `Generate EXACTLY %[1]d multiple choice questions based on the following text. Questions must be factual and based on information explicitly stated in the text.

Text: %[2]s

You MUST respond in this exact JSON format:
{
  "questions": [
    {
      "question": "Question text here?",
      "answer": "Correct answer",
      "options": ["Correct answer", "Wrong option 1", "Wrong option 2", "Wrong option 3"]
    }
  ]
}

Rules:
- Generate exactly %[1]d questions
- All questions must be based on facts from the text
- Wrong options should be plausible but not mentioned in the text
- The correct answer must be one of the options`

const userPromptKZ = `Келесі мәтіннен ДӘЛМЕ-ДӘЛ %[1]d көп нұсқалы сұрақтар жасаңыз. Сұрақтар мәтінде жазылған фактілерге негізделуі керек.

Мәтін: %[2]s

МІНДЕТТІ түрде осы JSON форматын сақтаңыз:
{
  "questions": [
    {
      "question": "Нақты сұрақ мәтіні?",
      "answer": "Дұрыс жауап",
      "options": ["Дұрыс жауап", "Қате нұсқа 1", "Қате нұсқа 2", "Қате нұсқа 3"]
    }
  ]
}

Ережелер:
- Дәл %[1]d сұрақ жасаңыз
- Барлық сұрақтар мәтіннен алынған фактілерге негізделуі керек
- Қате нұсқалар ақылға қонымды болуы керек, бірақ мәтіннен алынбауы керек
- Жауап нұсқалардың ішінде болуы керек`

func systemPrompt(lang i18n.Language) string {
	if lang == i18n.Kazakh {
		return systemPromptKZ
	}
	return systemPromptEN
}

// buildUserMessage embeds the (truncated) source text and the exact count.
func buildUserMessage(text string, lang i18n.Language, count, maxLen int) string {
	tmpl := userPromptEN
	if lang == i18n.Kazakh {
		tmpl = userPromptKZ
	}
	return fmt.Sprintf(tmpl, count, truncate(strings.TrimSpace(text), maxLen))
}

// truncate cuts s to max characters and marks the cut with "...".
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// placeholderOptions fills in options when the model omitted them.
func placeholderOptions(answer string, lang i18n.Language) []string {
	label := i18n.For(lang).OptionLabel
	return []string{answer, label + " A", label + " B", label + " C"}
}
