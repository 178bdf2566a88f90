// Package language resolves the language names users give for stopword
// lists.
//
// "nl", "nld", "dut", "nl-BE" and "Nederlands" all resolve to "nl", the key
// of the built-in Dutch stopword list. Parsing and display names come from
// golang.org/x/text/language.
package language
