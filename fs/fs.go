// Package fs provides file-based storage for saved answers.
package fs
