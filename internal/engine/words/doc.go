// Package words converts finite signed decimal numbers into English words.
//
// The integer part is read in groups of three digits with scale words up to
// Trillion; fractional digits are read one at a time after "Point". The
// conversion works over the plain decimal string form, so it is exact for
// any value the evaluator can produce.
package words
