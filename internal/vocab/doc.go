// Package vocab manages the project's controlled subject vocabulary: the
// faceted term list, the mappings that resolve raw catalog subject strings to
// terms, and the tagger that applies weighted terms to films. The vocabulary
// itself is a curated research artifact; the code only ships the seed and
// keeps application mechanical.
package vocab
