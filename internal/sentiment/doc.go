// Package sentiment implements the sentiment classification pipeline.
//
// A Service is trained once at startup: the vectorizer learns a vocabulary from
// the reference corpus, every corpus text is turned into a term-frequency
// vector, and a multinomial Naive Bayes classifier is fit on the result.
// After training nothing mutates, so Classify is safe to call from any number
// of goroutines without coordination.
package sentiment
