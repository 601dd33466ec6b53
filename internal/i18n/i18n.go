// Package i18n holds the two fixed UI string tables (Kazakh and English).
package i18n

import "strings"

// Language identifies a UI and generation language.
type Language string

const (
	Kazakh  Language = "kz"
	English Language = "en"
)

// Default is used when no language is configured.
const Default = English

// Parse maps a user-supplied code to a Language. Unknown values fall back
// to English.
func Parse(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kz", "kk", "kaz", "kazakh":
		return Kazakh
	default:
		return English
	}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == Kazakh || l == English
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == Kazakh {
		return English
	}
	return Kazakh
}

func (l Language) String() string { return string(l) }

// Strings is the set of user-facing labels for one language.
type Strings struct {
	Logo          string
	Flashcards    string
	Test          string
	SignInPrompt  string
	UploadFile    string
	PasteText     string
	DragDrop      string
	Processing    string
	ChooseMethod  string
	YourUploads   string
	ShowAnswer    string
	NextCard      string
	PrevCard      string
	SubmitAnswer  string
	NextQuestion  string
	Score         string
	Complete      string
	BackToHome    string
	Correct       string
	Incorrect     string
	CorrectAnswer string

	Generate         string
	PastePlaceholder string
	QuestionCount    string
	NoQuestions      string
	NoUploads        string
	Cancel           string
	CardHint         string
	Question         string
	Answer           string
	OptionLabel      string

	Quit       string
	Back       string
	Navigate   string
	Select     string
	NextField  string
	Language   string
	LastResult string
	SignedInAs string

	Tagline     string
	PressAnyKey string

	History    string
	NoHistory  string
	Loading    string
	StudyAgain string
	TooSmall   string
}

var tables = map[Language]Strings{
	Kazakh: {
		Logo:          "Оқу",
		Flashcards:    "Флэшкарталар",
		Test:          "Тест",
		SignInPrompt:  "Файл тарихын сақтау үшін кіріңіз",
		UploadFile:    "Файл жүктеу",
		PasteText:     "Мәтін енгізу",
		DragDrop:      "Файлды осы жерге апарыңыз немесе жолын жазыңыз",
		Processing:    "Өңделуде...",
		ChooseMethod:  "Дайындық әдісін таңдаңыз",
		YourUploads:   "Сіздің жүктеулеріңіз",
		ShowAnswer:    "Жауапты көрсету",
		NextCard:      "Келесі карта",
		PrevCard:      "Алдыңғы карта",
		SubmitAnswer:  "Жауапты жіберу",
		NextQuestion:  "Келесі сұрақ",
		Score:         "Ұпай",
		Complete:      "Аяқталды!",
		BackToHome:    "Басты бетке оралу",
		Correct:       "Дұрыс!",
		Incorrect:     "Дұрыс емес",
		CorrectAnswer: "Дұрыс жауап",

		Generate:         "Сұрақтар құру",
		PastePlaceholder: "Мәтінді осы жерге қойыңыз...",
		QuestionCount:    "Сұрақтар саны",
		NoQuestions:      "Сұрақтар жоқ",
		NoUploads:        "Жүктеулер әлі жоқ",
		Cancel:           "Болдырмау",
		CardHint:         "Аудару үшін бос орын, жылжу үшін көрсеткілер",
		Question:         "Сұрақ",
		Answer:           "Жауап",
		OptionLabel:      "Нұсқа",

		Quit:       "Шығу",
		Back:       "Артқа",
		Navigate:   "Жылжу",
		Select:     "Таңдау",
		NextField:  "Келесі өріс",
		Language:   "Тіл",
		LastResult: "Соңғы нәтиже",
		SignedInAs: "Кірген пайдаланушы",

		Tagline:     "Жазбаларыңызды сұрақтарға айналдырыңыз",
		PressAnyKey: "жалғастыру үшін кез келген пернені басыңыз",

		History:    "Оқу тарихы",
		NoHistory:  "Әзірге оқу сессиялары жоқ.",
		Loading:    "Жүктелуде...",
		StudyAgain: "Қайта оқу",
		TooSmall:   "Терминал тым кішкентай",
	},
	English: {
		Logo:          "Study",
		Flashcards:    "Flashcards",
		Test:          "Test",
		SignInPrompt:  "Sign in to save your uploads",
		UploadFile:    "Upload File",
		PasteText:     "Paste Text",
		DragDrop:      "Drop a file here or type its path",
		Processing:    "Processing...",
		ChooseMethod:  "Choose preparation method",
		YourUploads:   "Your uploads",
		ShowAnswer:    "Show Answer",
		NextCard:      "Next Card",
		PrevCard:      "Previous Card",
		SubmitAnswer:  "Submit Answer",
		NextQuestion:  "Next Question",
		Score:         "Score",
		Complete:      "Complete!",
		BackToHome:    "Back to Home",
		Correct:       "Correct!",
		Incorrect:     "Incorrect",
		CorrectAnswer: "Correct answer",

		Generate:         "Generate Questions",
		PastePlaceholder: "Paste your text here...",
		QuestionCount:    "Questions",
		NoQuestions:      "No questions available",
		NoUploads:        "No uploads yet",
		Cancel:           "Cancel",
		CardHint:         "Press space to flip, arrow keys to navigate",
		Question:         "Question",
		Answer:           "Answer",
		OptionLabel:      "Option",

		Quit:       "Quit",
		Back:       "Back",
		Navigate:   "Navigate",
		Select:     "Select",
		NextField:  "Next field",
		Language:   "Language",
		LastResult: "Last result",
		SignedInAs: "Signed in as",

		Tagline:     "Turn your notes into questions",
		PressAnyKey: "press any key to continue",

		History:    "Study history",
		NoHistory:  "No study sessions yet.",
		Loading:    "Loading...",
		StudyAgain: "Study again",
		TooSmall:   "Terminal too small",
	},
}

// For returns the string table for lang, defaulting to English.
func For(lang Language) Strings {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[English]
}
