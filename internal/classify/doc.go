// Package classify turns a flat ContentElement token stream into the
// structured pieces of a base libretto: the cast list, the ordered
// musical numbers, and each number's character-attributed segments.
//
// Every heuristic in this package is total. Ambiguous input degrades to a
// defined default — an absent cast header yields an empty cast, a label
// that matches no pattern is treated as incidental credit text, text
// before the first number label becomes an implicit recitative — so
// classification never fails. Running the same stream twice yields the
// same IDs, which is what makes bilingual alignment by ID possible.
package classify
