// README: In-memory search over the metro dataset and the gazetteer. Pure, synchronous, no I/O.
package location

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// pillarNumberRe recognises "pillar no. 12", "pillar number 12", "pillar 12".
var pillarNumberRe = regexp.MustCompile(`(?i)pillar\s*(?:no\.?|number)?\s*(\d+)`)

// Index answers local (non-remote) search queries against the static
// datasets. All matching is case-insensitive substring matching.
type Index struct {
	stations  []Location
	pillars   []Location
	gazetteer []Location
}

func NewIndex(ds Dataset) *Index {
	return &Index{
		stations:  ds.Stations,
		pillars:   ds.Pillars,
		gazetteer: ds.Gazetteer,
	}
}

// SearchMetro matches the query against metro stations and pillars and
// returns ranked results, best rank first.
//
// Stations match on a name/area substring, on a line substring when the
// query mentions "line", or unconditionally when the query contains the
// token "metro". A query naming an exact pillar number outranks everything;
// other pillar matches require the "pillar" keyword.
func (ix *Index) SearchMetro(query string) []Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Location

	isMetroQuery := strings.Contains(q, "metro")
	isLineQuery := strings.Contains(q, "line")

	for _, st := range ix.stations {
		name := strings.ToLower(st.Name)
		area := strings.ToLower(st.Area)
		line := strings.ToLower(st.Line)

		match := isMetroQuery ||
			strings.Contains(name, q) ||
			strings.Contains(area, q) ||
			(isLineQuery && strings.Contains(line, q))
		if !match {
			continue
		}

		st.Rank = RankStationMatch
		st.EnsureRanges()
		results = append(results, st)
	}

	pillarNumber, hasPillarNumber := queryPillarNumber(q)
	isPillarQuery := strings.Contains(q, "pillar")

	for _, p := range ix.pillars {
		name := strings.ToLower(p.Name)

		if hasPillarNumber {
			if n, ok := queryPillarNumber(name); ok && n == pillarNumber {
				p.Rank = RankPillarExact
				p.EnsureRanges()
				results = append(results, p)
				continue
			}
		}

		if !isPillarQuery {
			continue
		}
		ref := strings.ToLower(p.Reference)
		area := strings.ToLower(p.Area)
		if strings.Contains(name, q) || strings.Contains(ref, q) || strings.Contains(area, q) {
			p.Rank = RankPillarMatch
			p.EnsureRanges()
			results = append(results, p)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})
	return results
}

// SearchGazetteer matches the query against the gazetteer's name, address,
// and area fields. Results are unordered among themselves; the caller
// assigns their merge rank.
func (ix *Index) SearchGazetteer(query string) []Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Location
	for _, loc := range ix.gazetteer {
		if strings.Contains(strings.ToLower(loc.Name), q) ||
			strings.Contains(strings.ToLower(loc.Address), q) ||
			strings.Contains(strings.ToLower(loc.Area), q) {
			loc.Rank = RankGazetteer
			loc.EnsureRanges()
			results = append(results, loc)
		}
	}
	return results
}

// queryPillarNumber extracts the pillar number named in the text, if any.
func queryPillarNumber(text string) (int, bool) {
	m := pillarNumberRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
