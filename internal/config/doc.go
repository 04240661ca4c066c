// Package config centralizes the analyzer's fixed constants (input file
// names, column names, artifact naming) and the small environment-driven
// configuration surface for logging.
//
// Pipeline behavior is deliberately not configurable: the two input
// workbooks, their expected columns, and every derived-column rule are
// compile-time constants.
package config
