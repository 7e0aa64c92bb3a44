package services

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/questions"
)

const (
	// AllTimePeriod labels an analysis over the whole answer set.
	AllTimePeriod = "All time"
	// ReflectiveMood is the only mood the analyzer assigns today.
	ReflectiveMood = "reflective"

	// TopThemeCount is how many categories an AnalysisResult reports.
	TopThemeCount = 3
	// MinAnswersForInsight is the answer count below which the insight is a
	// fixed encouragement instead of a templated sentence.
	MinAnswersForInsight = 5

	NoAnswersInsight      = "Start answering questions to reveal patterns in your thinking."
	GettingStartedInsight = "You're just getting started. Keep reflecting to see deeper connections emerge."
	VariedInsight         = "Your reflections are varied and diverse."
	FallbackAdvice        = "Trust your process."
)

// insightTemplates each take the top category name.
var insightTemplates = []string{
	"It seems you've been focusing a lot on %s lately.",
	"Your recent answers continually circle back to themes of %s.",
	"You are currently in a season of %s.",
}

const secondThemeSentence = " There's also a strong undercurrent of %s in your thoughts."

// adviceByCategory closes an insight. Keys are lowercase.
var adviceByCategory = map[string]string{
	"growth":     "Remember that growth is often uncomfortable, but always worth it.",
	"reflection": "Looking back is the best way to move forward with intention.",
	"gratitude":  "Noticing the small things is a powerful way to shift your mindset.",
	"anxiety":    "Be gentle with yourself. These feelings are valid.",
	"hope":       "Hold onto that feeling. It's a light in the dark.",
	"courage":    "Brave actions often feel like fear until they are done.",
}

// RandomSource picks template indexes. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// ThemeCount is one row of the category tally.
type ThemeCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AnalysisResult is derived on demand and never persisted.
type AnalysisResult struct {
	Period       string       `json:"period"`
	TotalAnswers int          `json:"totalAnswers"`
	TopThemes    []ThemeCount `json:"topThemes"`
	Insight      string       `json:"insight"`
	Mood         string       `json:"mood,omitempty"`
}

// Summary backs the statistics view.
type Summary struct {
	Total      int    `json:"total"`
	ThisWeek   int    `json:"thisWeek"`
	ThisMonth  int    `json:"thisMonth"`
	Streak     int    `json:"streak"`
	AvgWords   int    `json:"avgWords"`
	TotalWords int    `json:"totalWords"`
	Favorites  int    `json:"favorites"`
	Message    string `json:"message"`
}

// Analyzer derives statistics from an answer snapshot. It only reads the
// snapshot; the caller keeps ownership.
type Analyzer struct {
	bank *questions.Bank
	rnd  RandomSource
}

// NewAnalyzer creates an analyzer resolving categories through bank. A nil
// rnd falls back to a time-seeded source.
func NewAnalyzer(bank *questions.Bank, rnd RandomSource) *Analyzer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyzer{bank: bank, rnd: rnd}
}

// Analyze tallies categories, keeps the top three, and writes the insight.
func (a *Analyzer) Analyze(answers []entities.Answer) AnalysisResult {
	tally := a.CategoryTally(answers)
	top := TopThemes(tally, TopThemeCount)
	return AnalysisResult{
		Period:       AllTimePeriod,
		TotalAnswers: len(answers),
		TopThemes:    top,
		Insight:      a.InsightText(top, len(answers)),
		Mood:         ReflectiveMood,
	}
}

// CategoryTally counts answers per category of their question, sorted by
// count descending. Ties keep the order in which categories were first seen.
// Answers whose question is unknown or uncategorized are skipped.
func (a *Analyzer) CategoryTally(answers []entities.Answer) []ThemeCount {
	index := make(map[string]int)
	tally := make([]ThemeCount, 0)
	for _, ans := range answers {
		q, ok := a.bank.ByID(ans.QuestionID)
		if !ok || q.Category == "" {
			continue
		}
		if i, seen := index[q.Category]; seen {
			tally[i].Count++
			continue
		}
		index[q.Category] = len(tally)
		tally = append(tally, ThemeCount{Category: q.Category, Count: 1})
	}
	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Count > tally[j].Count
	})
	return tally
}

// TopThemes returns at most n leading entries of a sorted tally.
func TopThemes(tally []ThemeCount, n int) []ThemeCount {
	if n > len(tally) {
		n = len(tally)
	}
	if n < 0 {
		n = 0
	}
	top := make([]ThemeCount, n)
	copy(top, tally[:n])
	return top
}

// InsightText renders the templated insight for the given top themes.
func (a *Analyzer) InsightText(top []ThemeCount, total int) string {
	switch {
	case total == 0:
		return NoAnswersInsight
	case total < MinAnswersForInsight:
		return GettingStartedInsight
	case len(top) == 0:
		return VariedInsight
	}

	first := top[0].Category
	var b strings.Builder
	b.WriteString(fmt.Sprintf(insightTemplates[a.rnd.Intn(len(insightTemplates))], first))
	if len(top) > 1 {
		b.WriteString(fmt.Sprintf(secondThemeSentence, top[1].Category))
	}
	b.WriteString(" ")
	b.WriteString(Advice(first))
	return b.String()
}

// Advice returns the closing line for a category.
func Advice(category string) string {
	if advice, ok := adviceByCategory[strings.ToLower(category)]; ok {
		return advice
	}
	return FallbackAdvice
}

// InsightCandidates lists every sentence InsightText may produce for top
// when at least MinAnswersForInsight answers exist.
func InsightCandidates(top []ThemeCount) []string {
	if len(top) == 0 {
		return []string{VariedInsight}
	}
	out := make([]string, 0, len(insightTemplates))
	for _, tmpl := range insightTemplates {
		s := fmt.Sprintf(tmpl, top[0].Category)
		if len(top) > 1 {
			s += fmt.Sprintf(secondThemeSentence, top[1].Category)
		}
		out = append(out, s+" "+Advice(top[0].Category))
	}
	return out
}

// Streak counts consecutive answered calendar days ending today. Without an
// answer for today the streak is zero, even if yesterday was answered.
func Streak(answers []entities.Answer, now time.Time) int {
	dates := make(map[valueobjects.DateKey]struct{}, len(answers))
	for _, ans := range answers {
		dates[ans.Date] = struct{}{}
	}

	day := valueobjects.Today(now)
	streak := 0
	for {
		if _, ok := dates[day]; !ok {
			return streak
		}
		streak++
		day = day.AddDays(-1)
	}
}

// WordStats returns the total word count and the rounded per-answer average.
func WordStats(answers []entities.Answer) (total, avg int) {
	for _, ans := range answers {
		total += ans.WordCount()
	}
	if len(answers) == 0 {
		return 0, 0
	}
	return total, int(math.Round(float64(total) / float64(len(answers))))
}

// CountSince counts answers whose date, taken as midnight in now's location,
// is at or after now minus the given number of 24-hour days.
func CountSince(answers []entities.Answer, now time.Time, days int) int {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	n := 0
	for _, ans := range answers {
		t, err := ans.Date.Time(now.Location())
		if err != nil {
			continue
		}
		if !t.Before(cutoff) {
			n++
		}
	}
	return n
}

// FavoriteCount counts answers marked favorite.
func FavoriteCount(answers []entities.Answer) int {
	n := 0
	for _, ans := range answers {
		if ans.IsFavorite {
			n++
		}
	}
	return n
}

// Summarize builds the statistics view for now.
func Summarize(answers []entities.Answer, now time.Time) Summary {
	total, avg := WordStats(answers)
	s := Summary{
		Total:      len(answers),
		ThisWeek:   CountSince(answers, now, 7),
		ThisMonth:  CountSince(answers, now, 30),
		Streak:     Streak(answers, now),
		AvgWords:   avg,
		TotalWords: total,
		Favorites:  FavoriteCount(answers),
	}
	s.Message = summaryMessage(s)
	return s
}

func summaryMessage(s Summary) string {
	switch {
	case s.Streak > 0:
		return fmt.Sprintf("Amazing! You're on a %d-day streak. Keep it up!", s.Streak)
	case s.Total < 7:
		return "Great start! Keep reflecting daily to build your habit."
	default:
		return "You've written " + groupThousands(s.TotalWords) + " words of reflection!"
	}
}

// groupThousands formats n with comma separators, e.g. 12345 -> "12,345".
func groupThousands(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String()
}
