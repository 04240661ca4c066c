// Package analyzer wires the pipeline stages into the two concrete
// analyses. Each analyzer runs load → clean → tag → visualize → save over
// one input workbook and returns the list of files it produced. The two
// pipelines share no state and run strictly sequentially.
package analyzer
