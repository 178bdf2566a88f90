// Package cloud renders word frequencies as a word-cloud image.
//
// Words are drawn with the x/image bitmap face, scaled by frequency and
// placed along an Archimedean spiral from the canvas centre so no two words
// overlap. Layout is deterministic: the same frequencies always produce the
// same image.
package cloud
