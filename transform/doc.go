// Package transform provides the text normalization used by numeric
// coercion: mapping Arabic-Indic and Extended Arabic-Indic digits to ASCII
// and stripping everything that cannot be part of a decimal number.
package transform
