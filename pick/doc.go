// Package pick chooses elements from slices using an explicit source.Stream.
//
// The plain helpers (Choose, ChooseDistinct, ChooseWeighted, ...) are
// memoryless. FilteredChooser routes element positions through a filtered
// int generator, so consecutive picks avoid the usual streaky patterns.
package pick
