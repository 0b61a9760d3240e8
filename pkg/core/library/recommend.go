package library

import (
	"fmt"
	"sort"
	"strings"

	"finwise/pkg/core/profile"
)

// Recommendation is one scored catalogue entry.
type Recommendation struct {
	Book   Book    `json:"book"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// FinancialGenres derives the genres worth reading from the financial
// profile: income picks the shelf, age and existing investments refine it.
func FinancialGenres(p profile.Profile) []string {
	income := profile.Income(p)
	age := profile.Age(p)
	investment := profile.Number(p, "investment_amount", 0)

	var genres []string
	seen := map[string]bool{}
	add := func(g string) {
		if !seen[g] {
			seen[g] = true
			genres = append(genres, g)
		}
	}

	switch {
	case income > 1000000:
		add(GenreBusiness)
		add(GenreInvestment)
	case income > 500000:
		add(GenreBusiness)
		add(GenreSelfHelp)
	default:
		add(GenreSelfHelp)
		add(GenrePsychology)
	}

	if age < 30 {
		add(GenreSelfHelp)
	} else if age > 50 {
		add(GenreInvestment)
		add(GenrePsychology)
	}

	if investment > 100000 {
		add(GenreInvestment)
	}

	return genres
}

// investmentLevels maps the invested amount onto the book levels worth
// recommending.
func investmentLevels(p profile.Profile) []string {
	investment := profile.Number(p, "investment_amount", 0)
	switch {
	case investment > 500000:
		return []string{LevelAdvanced, LevelIntermediate}
	case investment > 100000:
		return []string{LevelIntermediate, LevelBeginner}
	default:
		return []string{LevelBeginner}
	}
}

// financialRelevance scores how well a book fits the financial situation:
// income against the genre, invested amount against the book's level, age
// against the genre. Each rule pair is exclusive; the maximum is 1.0.
func financialRelevance(b Book, p profile.Profile) float64 {
	income := profile.Income(p)
	age := profile.Age(p)
	investment := profile.Number(p, "investment_amount", 0)

	relevance := 0.0

	if income > 1000000 && b.Genre == GenreBusiness {
		relevance += 0.5
	} else if income < 500000 && b.Genre == GenreSelfHelp {
		relevance += 0.5
	}

	if investment > 500000 && b.InvestmentLevel == LevelAdvanced {
		relevance += 0.3
	} else if investment < 100000 && b.InvestmentLevel == LevelBeginner {
		relevance += 0.3
	}

	if age < 30 && b.Genre == GenreSelfHelp {
		relevance += 0.2
	} else if age > 50 && b.Genre == GenreInvestment {
		relevance += 0.2
	}

	return relevance
}

// score weighs the book's own quality against its fit for this reader:
// 30% rating, 40% flat bonus for a preferred genre, 30% financial relevance,
// 10% popularity.
func score(b Book, p profile.Profile, preferred map[string]bool) float64 {
	s := b.Rating * 0.3
	if preferred[b.Genre] {
		s += 0.4
	}
	s += financialRelevance(b, p) * 0.3
	s += b.PopularityScore * 0.1
	return s
}

// reason builds the user-facing explanation for one recommendation.
func reason(b Book, p profile.Profile, preferred map[string]bool) string {
	income := profile.Income(p)
	investment := profile.Number(p, "investment_amount", 0)

	var reasons []string

	if preferred[b.Genre] {
		reasons = append(reasons, "Matches your preferred genre: "+b.Genre)
	}
	if income > 1000000 && b.Genre == GenreBusiness {
		reasons = append(reasons, "Perfect for high-income professionals")
	} else if income < 500000 && b.Genre == GenreSelfHelp {
		reasons = append(reasons, "Great for building financial foundation")
	}
	if b.Rating >= 4.0 {
		reasons = append(reasons, "Highly rated by readers")
	}
	if b.InvestmentLevel == LevelBeginner && investment < 100000 {
		reasons = append(reasons, "Perfect for beginners")
	} else if b.InvestmentLevel == LevelAdvanced && investment > 500000 {
		reasons = append(reasons, "Advanced strategies for experienced investors")
	}

	if len(reasons) == 0 {
		return "Recommended based on your profile"
	}
	return strings.Join(reasons, " • ")
}

// Recommendations builds the personalized top-10 shelf: candidate books match
// a preferred or profile-derived genre, or an appropriate investment level;
// each is scored and the list is sorted best-first. Total: an empty candidate
// set degrades to the popularity fallback.
func Recommendations(p profile.Profile, preferredGenres []string) []Recommendation {
	preferred := map[string]bool{}
	for _, g := range preferredGenres {
		preferred[g] = true
	}
	for _, g := range FinancialGenres(p) {
		preferred[g] = true
	}
	levels := map[string]bool{}
	for _, l := range investmentLevels(p) {
		levels[l] = true
	}

	var recs []Recommendation
	for _, b := range Catalogue() {
		if !preferred[b.Genre] && !levels[b.InvestmentLevel] {
			continue
		}
		recs = append(recs, Recommendation{
			Book:   b,
			Score:  score(b, p, preferred),
			Reason: reason(b, p, preferred),
		})
	}
	if len(recs) == 0 {
		return FallbackRecommendations()
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > 10 {
		recs = recs[:10]
	}
	return recs
}

// FallbackRecommendations is the popularity shelf: well-rated books ordered
// by popularity, no profile required. Never empty.
func FallbackRecommendations() []Recommendation {
	var recs []Recommendation
	for _, b := range Catalogue() {
		if b.Rating < 4.0 {
			continue
		}
		recs = append(recs, Recommendation{
			Book:   b,
			Score:  b.Rating,
			Reason: fmt.Sprintf("Popular %s book with %.1f★ rating", b.Genre, b.Rating),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Book.PopularityScore > recs[j].Book.PopularityScore })
	if len(recs) > 10 {
		recs = recs[:10]
	}
	return recs
}

// SimilarBooks lists up to six catalogue entries sharing the book's genre or
// investment level, excluding the book itself.
func SimilarBooks(title string) []Book {
	var target *Book
	catalogue := Catalogue()
	for i := range catalogue {
		if strings.EqualFold(catalogue[i].Title, title) {
			target = &catalogue[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	var similar []Book
	for _, b := range catalogue {
		if b.Title == target.Title {
			continue
		}
		if b.Genre != target.Genre && b.InvestmentLevel != target.InvestmentLevel {
			continue
		}
		similar = append(similar, b)
		if len(similar) == 6 {
			break
		}
	}
	return similar
}
