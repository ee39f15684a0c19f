package app

import "github.com/cesargomez89/sonicvault/internal/domain"

// sampleCatalog is loaded when SEED_LIBRARY is set.
func sampleCatalog() []domain.Album {
	return []domain.Album{
		{ID: "seed-01", Artist: "파란노을 [Parannoul]", Title: "After the Magic", Ownership: "Digital", Year: "2023", Tags: []string{"shoegaze", "k-indie"}, CoverURL: "https://upload.wikimedia.org/wikipedia/en/2/22/After_the_Magic.jpg"},
		{ID: "seed-02", Artist: "파란노을 [Parannoul]", Title: "Sky Hundred", Ownership: "Digital", Year: "2024", Tags: []string{"shoegaze", "live"}},
		{ID: "seed-03", Artist: "!!!", Title: "Louden Up Now", Rating: domain.Float(3.5), Ownership: "Digital", Year: "2004", Tags: []string{"dance-punk", "best albums 2000-2009"}},
		{ID: "seed-04", Artist: "!!!", Title: "Myth Takes", Rating: domain.Float(3.5), Ownership: "Digital", Year: "2007", Tags: []string{"dance-punk"}},
		{ID: "seed-05", Artist: "!!!", Title: "Strange Weather, Isn't It?", Rating: domain.Float(3), Ownership: "Digital", Year: "2010", Tags: []string{"dance-punk"}},
		{ID: "seed-06", Artist: "!!!", Title: "THR!!!ER", Rating: domain.Float(3), Ownership: "Digital", Year: "2013", Tags: []string{"dance-punk", "indie rock"}, CoverURL: "https://upload.wikimedia.org/wikipedia/en/e/e6/Thr%21%21%21er.jpg"},
		{ID: "seed-07", Artist: "!!!", Title: "Shake the Shudder", Ownership: "Digital", Year: "2017", Tags: []string{"dance-punk"}},
		{ID: "seed-08", Artist: "$uicideboy$", Title: "New World Depression", Ownership: "Digital", Year: "2024", Tags: []string{"hip hop", "trap"}},
		{ID: "seed-09", Artist: "¥$", Title: "Vultures 2", Ownership: "Digital", Year: "2024", Tags: []string{"hip hop"}},
		{ID: "seed-10", Artist: "100 gecs", Title: "10,000 gecs", Rating: domain.Float(4), Ownership: "Digital", Year: "2023", Tags: []string{"hyperpop"}},
		{ID: "seed-11", Artist: "120 Days", Title: "120 Days", Rating: domain.Float(3), Ownership: "Digital", Year: "2006", Tags: []string{"rock"}},
		{ID: "seed-12", Artist: "The 1975", Title: "The 1975", Rating: domain.Float(2), Ownership: "Digital", Year: "2013", Tags: []string{"pop rock"}},
		{ID: "seed-13", Artist: "The 1975", Title: "I Like It When You Sleep...", Rating: domain.Float(2.5), Ownership: "Digital", Year: "2016", Tags: []string{"pop rock"}},
		{ID: "seed-14", Artist: "1990s", Title: "Cookies", Rating: domain.Float(2), Ownership: "Digital", Year: "2007", Tags: []string{"indie rock"}},
	}
}
