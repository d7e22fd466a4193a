// Package splice attaches replacement words to the reference words whose
// time they occupy.
//
// Unlike package align, splicing never borrows duration: the revised texts
// are distributed across the reference window and each distributed word is
// greedily assigned to the reference word it overlaps best, discounted by
// how many syllables that reference word has already absorbed. Assignments
// are keyed by reference index, never by word value.
package splice
