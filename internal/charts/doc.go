// Package charts renders the summary visualizations as PNG files: bar
// charts and histograms via gonum/plot, pie charts via go-chart. All
// renderers take precomputed data and a destination path; filenames are
// the caller's concern so artifact naming stays in one place.
package charts
