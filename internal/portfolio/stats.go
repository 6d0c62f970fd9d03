package portfolio

// Stats summarizes the full catalog for the stats panel.
type Stats struct {
	Total      int
	Featured   int
	Categories int
}

// Summarize counts projects, featured projects, and distinct categories over
// the full collection, never the filtered view.
func Summarize(projects []Project) Stats {
	seen := make(map[string]struct{}, len(projects))
	stats := Stats{Total: len(projects)}
	for _, p := range projects {
		if p.Featured {
			stats.Featured++
		}
		seen[CategoryOf(p)] = struct{}{}
	}
	stats.Categories = len(seen)
	return stats
}
