// Package library is the wisdom library: a curated catalogue of finance and
// personal-growth books plus rule-based, profile-driven recommendations.
// Like planner, everything here is deterministic and derived only from the
// profile and the caller's stated preferences; no generation is involved.
package library

import (
	"strings"
)

// Book is one catalogue entry. Genre buckets the shelf, InvestmentLevel and
// Difficulty gate who the book suits, Topics carry the finer tags.
type Book struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Genre           string   `json:"genre"`
	SubGenre        string   `json:"sub_genre"`
	Description     string   `json:"description"`
	Rating          float64  `json:"rating"`
	Difficulty      string   `json:"difficulty_level"`
	InvestmentLevel string   `json:"investment_level"`
	Topics          []string `json:"financial_topics"`
	PopularityScore float64  `json:"popularity_score"`
	StoreURL        string   `json:"store_url"`
}

// Genre and level names used across the catalogue and the rules.
const (
	GenreBusiness   = "Business & Management"
	GenrePsychology = "Psychology"
	GenreSelfHelp   = "Self-Help / Personal Growth"
	GenreInvestment = "Investment"

	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// storeURL builds the bookstore search link for a catalogue entry.
func storeURL(title, author string) string {
	q := strings.ReplaceAll(title, " ", "+") + "+" + strings.ReplaceAll(author, " ", "+")
	return "https://www.amazon.com/s?k=" + q
}

func book(title, author, genre, subGenre, description string, rating float64, difficulty, level string, topics []string, popularity float64) Book {
	return Book{
		Title:           title,
		Author:          author,
		Genre:           genre,
		SubGenre:        subGenre,
		Description:     description,
		Rating:          rating,
		Difficulty:      difficulty,
		InvestmentLevel: level,
		Topics:          topics,
		PopularityScore: popularity,
		StoreURL:        storeURL(title, author),
	}
}

// Catalogue returns the curated shelf. Value objects rebuilt per call so
// callers can never mutate the shared list.
func Catalogue() []Book {
	return []Book{
		book("The Psychology of Money", "Morgan Housel", GenreBusiness, "Investment",
			"Timeless lessons on wealth, greed, and happiness. Understanding how people think about money.",
			4.5, LevelBeginner, LevelBeginner,
			[]string{"Behavioral Finance", "Wealth Building", "Psychology"}, 9.2),
		book("Rich Dad Poor Dad", "Robert T. Kiyosaki", GenreBusiness, "Investment",
			"What the rich teach their kids about money that the poor and middle class do not.",
			4.3, LevelBeginner, LevelBeginner,
			[]string{"Financial Education", "Assets vs Liabilities", "Cash Flow"}, 8.8),
		book("The Intelligent Investor", "Benjamin Graham", GenreBusiness, "Investment",
			"The definitive book on value investing, written by Warren Buffett's mentor.",
			4.6, LevelAdvanced, LevelAdvanced,
			[]string{"Value Investing", "Stock Analysis", "Risk Management"}, 9.0),
		book("Think and Grow Rich", "Napoleon Hill", GenreBusiness, "Mindset",
			"Based on interviews with successful people, this book reveals the secrets to success.",
			4.4, LevelBeginner, LevelBeginner,
			[]string{"Success Principles", "Mindset", "Goal Setting"}, 8.5),
		book("The 7 Habits of Highly Effective People", "Stephen R. Covey", GenreBusiness, "Leadership",
			"A powerful framework for personal and professional effectiveness.",
			4.5, LevelIntermediate, LevelIntermediate,
			[]string{"Leadership", "Productivity", "Personal Development"}, 8.9),
		book("Thinking, Fast and Slow", "Daniel Kahneman", GenrePsychology, "Behavioral Economics",
			"Nobel Prize winner explains the two systems that drive the way we think.",
			4.4, LevelIntermediate, LevelIntermediate,
			[]string{"Decision Making", "Cognitive Biases", "Behavioral Economics"}, 8.7),
		book("The Power of Habit", "Charles Duhigg", GenrePsychology, "Behavioral Science",
			"Why we do what we do in life and business. Understanding habit formation.",
			4.3, LevelBeginner, LevelBeginner,
			[]string{"Habit Formation", "Behavioral Change", "Productivity"}, 8.2),
		book("Mindset: The New Psychology of Success", "Carol S. Dweck", GenrePsychology, "Growth Mindset",
			"How we can learn to fulfill our potential through the power of mindset.",
			4.4, LevelBeginner, LevelBeginner,
			[]string{"Growth Mindset", "Learning", "Personal Development"}, 8.4),
		book("Atomic Habits", "James Clear", GenrePsychology, "Behavioral Science",
			"Tiny changes, remarkable results. An easy and proven way to build good habits.",
			4.6, LevelBeginner, LevelBeginner,
			[]string{"Habit Building", "Personal Development", "Productivity"}, 9.1),
		book("The Subtle Art of Not Giving a F*ck", "Mark Manson", GenrePsychology, "Self-Help",
			"A counterintuitive approach to living a good life.",
			4.2, LevelBeginner, LevelBeginner,
			[]string{"Mindset", "Life Philosophy", "Personal Growth"}, 8.0),
		book("The 5 AM Club", "Robin Sharma", GenreSelfHelp, "Productivity",
			"Own your morning, elevate your life. The morning routine of successful people.",
			4.3, LevelBeginner, LevelBeginner,
			[]string{"Morning Routine", "Productivity", "Personal Development"}, 8.3),
		book("Deep Work", "Cal Newport", GenreSelfHelp, "Productivity",
			"Rules for focused success in a distracted world.",
			4.4, LevelIntermediate, LevelIntermediate,
			[]string{"Focus", "Productivity", "Career Development"}, 8.6),
		book("The Compound Effect", "Darren Hardy", GenreSelfHelp, "Success",
			"Jumpstart your income, your life, your success.",
			4.3, LevelBeginner, LevelBeginner,
			[]string{"Compound Effect", "Success Principles", "Personal Development"}, 8.1),
		book("Who Moved My Cheese?", "Spencer Johnson", GenreSelfHelp, "Change Management",
			"An amazing way to deal with change in your work and in your life.",
			4.1, LevelBeginner, LevelBeginner,
			[]string{"Change Management", "Adaptability", "Personal Growth"}, 7.8),
		book("The Alchemist", "Paulo Coelho", GenreSelfHelp, "Inspiration",
			"A magical story about following your dreams and listening to your heart.",
			4.5, LevelBeginner, LevelBeginner,
			[]string{"Dreams", "Personal Journey", "Inspiration"}, 8.7),
		book("A Random Walk Down Wall Street", "Burton G. Malkiel", GenreBusiness, "Investment",
			"The time-tested strategy for successful investing.",
			4.4, LevelIntermediate, LevelIntermediate,
			[]string{"Index Investing", "Market Efficiency", "Portfolio Management"}, 8.5),
		book("The Total Money Makeover", "Dave Ramsey", GenreBusiness, "Personal Finance",
			"A proven plan for financial fitness.",
			4.3, LevelBeginner, LevelBeginner,
			[]string{"Debt Management", "Budgeting", "Emergency Fund"}, 8.2),
		book("Shoe Dog", "Phil Knight", GenreBusiness, "Entrepreneurship",
			"A memoir by the creator of Nike.",
			4.5, LevelIntermediate, LevelIntermediate,
			[]string{"Entrepreneurship", "Business Building", "Leadership"}, 8.8),
		book("Good to Great", "Jim Collins", GenreBusiness, "Leadership",
			"Why some companies make the leap and others don't.",
			4.4, LevelAdvanced, LevelAdvanced,
			[]string{"Business Strategy", "Leadership", "Company Analysis"}, 8.6),
		book("The Lean Startup", "Eric Ries", GenreBusiness, "Entrepreneurship",
			"How constant innovation creates radically successful businesses.",
			4.3, LevelIntermediate, LevelIntermediate,
			[]string{"Startup Strategy", "Innovation", "Business Model"}, 8.4),
	}
}

// Filters lists the distinct filter values present in the catalogue, in
// catalogue order.
type Filters struct {
	Genres           []string `json:"genres"`
	Difficulties     []string `json:"difficulties"`
	InvestmentLevels []string `json:"investment_levels"`
}

// CatalogueFilters derives the available filter values from the catalogue.
func CatalogueFilters() Filters {
	var f Filters
	seenGenre := map[string]bool{}
	seenDifficulty := map[string]bool{}
	seenLevel := map[string]bool{}
	for _, b := range Catalogue() {
		if !seenGenre[b.Genre] {
			seenGenre[b.Genre] = true
			f.Genres = append(f.Genres, b.Genre)
		}
		if !seenDifficulty[b.Difficulty] {
			seenDifficulty[b.Difficulty] = true
			f.Difficulties = append(f.Difficulties, b.Difficulty)
		}
		if !seenLevel[b.InvestmentLevel] {
			seenLevel[b.InvestmentLevel] = true
			f.InvestmentLevels = append(f.InvestmentLevels, b.InvestmentLevel)
		}
	}
	return f
}

// Search filters the catalogue. query matches title, author or genre
// case-insensitively; genre, difficulty and investmentLevel are exact-match
// filters, empty meaning no constraint.
func Search(query, genre, difficulty, investmentLevel string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))

	var books []Book
	for _, b := range Catalogue() {
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) &&
			!strings.Contains(strings.ToLower(b.Genre), q) {
			continue
		}
		if genre != "" && b.Genre != genre {
			continue
		}
		if difficulty != "" && b.Difficulty != difficulty {
			continue
		}
		if investmentLevel != "" && b.InvestmentLevel != investmentLevel {
			continue
		}
		books = append(books, b)
	}
	return books
}
