// Package textmine is the keyword-mining core of hixminer.
//
// A pass reads one sheet of clinical notes, tokenizes the free-text column,
// flags which configured keywords occur in each record and collects the
// tokens of every record into a corpus for frequency visualization:
//
//	rows -> Tokenize -> MatchedKeywords -> Aggregate -> FilterStopwords
//
// Everything here is synchronous and stateless between calls. Process is
// the entry point used by the CLI; Aggregate, MatchedKeywords and Tokenize
// are exported for callers that already hold records in memory.
package textmine
