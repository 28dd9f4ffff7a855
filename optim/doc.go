// Package optim walks an input tree and writes width-bounded JPEG copies of
// its images into a mirrored output tree, one file at a time.
package optim
