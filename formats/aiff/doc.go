// SPDX-License-Identifier: EPL-2.0

// Package aiff imports AIFF audio into normalized sample buffers.
//
// This package uses github.com/go-audio/aiff for decoding:
//
//	layout, ch0, ch1, err := aiff.ReadSignal(file)
package aiff
