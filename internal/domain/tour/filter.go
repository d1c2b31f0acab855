package tour

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// PageSize is the fixed number of tours per result page
	PageSize = 6

	// DefaultPriceMin and DefaultPriceMax form the unrestricted price range.
	// The price stage only runs when the caller narrows this range.
	DefaultPriceMin = 0
	DefaultPriceMax = 100000
)

// Duration bucket labels
const (
	BucketShort  = "1-3 days"
	BucketMedium = "4-7 days"
	BucketLong   = "8+ days"
)

// FilterState holds the active search/filter/pagination criteria
type FilterState struct {
	Query          string
	Durations      []string
	PriceMin       float64
	PriceMax       float64
	MinRating      float64
	FavouritesOnly bool
	FavouriteIDs   map[uuid.UUID]struct{}
	Page           int
}

// NewFilterState returns a FilterState with the unrestricted defaults
func NewFilterState() FilterState {
	return FilterState{
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// PageResult is one page of filtered tours plus pagination counts.
// TotalPages is computed over the fully filtered set before slicing,
// so it is stable across page changes.
type PageResult struct {
	Tours      []*TourPackage
	Total      int
	TotalPages int
	Page       int
}

// durationPattern matches the leading count of a duration label,
// e.g. "4 Days 3 Nights" or "10-day trek".
var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*-?\s*(?:day|night)`)

// Filter reduces the catalog to the subset matching all active criteria,
// then paginates. Stages run in a fixed order: favourites gate, free-text
// search, duration buckets, price range, rating. Pure function, no side
// effects; callers re-run it whenever any criterion or the catalog changes.
func Filter(catalog []*TourPackage, f FilterState) PageResult {
	filtered := make([]*TourPackage, 0, len(catalog))
	for _, t := range catalog {
		if t == nil {
			continue
		}
		if !f.matchesFavourites(t) {
			continue
		}
		if !f.matchesQuery(t) {
			continue
		}
		if !f.matchesDuration(t) {
			continue
		}
		if !f.matchesPrice(t) {
			continue
		}
		if !f.matchesRating(t) {
			continue
		}
		filtered = append(filtered, t)
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	// Page is not clamped: an out-of-range page yields an empty slice
	start := f.Page * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	if start < 0 {
		start, end = 0, 0
	}

	return PageResult{
		Tours:      filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       f.Page,
	}
}

func (f FilterState) matchesFavourites(t *TourPackage) bool {
	if !f.FavouritesOnly {
		return true
	}
	_, ok := f.FavouriteIDs[t.ID]
	return ok
}

func (f FilterState) matchesQuery(t *TourPackage) bool {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}
	return strings.Contains(searchCorpus(t), query)
}

// searchCorpus concatenates title, itinerary activities and destination
// names into one lower-cased haystack for substring search
func searchCorpus(t *TourPackage) string {
	var b strings.Builder
	b.WriteString(t.Title)
	for _, day := range t.Itinerary {
		for _, activity := range day.Activities {
			b.WriteString(" ")
			b.WriteString(activity)
		}
	}
	for _, dest := range t.Destinations {
		b.WriteString(" ")
		b.WriteString(dest)
	}
	return strings.ToLower(b.String())
}

func (f FilterState) matchesDuration(t *TourPackage) bool {
	if len(f.Durations) == 0 {
		return true
	}
	days, ok := leadingDayCount(t.DurationLabel)
	if !ok {
		// No numeric duration token matches no bucket
		return false
	}
	for _, bucket := range f.Durations {
		if bucketContains(bucket, days) {
			return true
		}
	}
	return false
}

// leadingDayCount extracts the leading count followed by "day" or "night"
// from a free-text duration label
func leadingDayCount(label string) (int, bool) {
	m := durationPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func bucketContains(bucket string, days int) bool {
	switch bucket {
	case BucketShort:
		return days >= 1 && days <= 3
	case BucketMedium:
		return days >= 4 && days <= 7
	case BucketLong:
		return days >= 8
	default:
		return false
	}
}

func (f FilterState) matchesPrice(t *TourPackage) bool {
	if f.PriceMin == DefaultPriceMin && f.PriceMax == DefaultPriceMax {
		return true
	}
	// Absent price defaults to 0
	return t.Price.Amount >= f.PriceMin && t.Price.Amount <= f.PriceMax
}

func (f FilterState) matchesRating(t *TourPackage) bool {
	if f.MinRating <= 0 {
		return true
	}
	return t.Rating >= f.MinRating
}
