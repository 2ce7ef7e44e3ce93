//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode a structural
// diagram model into some narrative text form.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"codeberg.org/t73fde/accviz/model"
)

// Encoder is an interface that allows to encode a diagram into a narrative.
type Encoder interface {
	WriteDiagram(io.Writer, *model.Diagram) (int, error)
	WriteStructure(io.Writer, model.Structure) (int, error)
}

// Encoding enumerates the supported narrative encodings.
type Encoding uint8

// Constants for Encoding.
const (
	EncodingUnknown Encoding = iota
	EncodingHTML
	EncodingText
	EncodingNative
)

var encodingName = map[Encoding]string{
	EncodingHTML:   "html",
	EncodingText:   "text",
	EncodingNative: "native",
}

func (e Encoding) String() string {
	if name, ok := encodingName[e]; ok {
		return name
	}
	return "*Unknown*"
}

// ParseEncoding returns the encoding of the given string value.
func ParseEncoding(val string) Encoding {
	for e, name := range encodingName {
		if name == val {
			return e
		}
	}
	return EncodingUnknown
}

// ErrNoEncoding signals a request for an unregistered encoding.
var ErrNoEncoding = errors.New("no encoder for encoding found")

// Create builds a new encoder for the given encoding.
func Create(enc Encoding) Encoder {
	if info, ok := registry[enc]; ok {
		return info.Create()
	}
	return nil
}

// Info stores some data about an encoder.
type Info struct {
	Create  func() Encoder
	Default bool
}

var registry = map[Encoding]Info{}
var defEncoding Encoding

// Register the encoder for later retrieval.
func Register(enc Encoding, info Info) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	if info.Default {
		if defEncoding != EncodingUnknown && defEncoding != enc {
			panic(fmt.Sprintf("Default encoder already set: %q, new encoding: %q", defEncoding, enc))
		}
		defEncoding = enc
	}
	registry[enc] = info
}

// GetEncodings returns all registered encodings, ordered by encoding value.
func GetEncodings() []Encoding {
	result := make([]Encoding, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// GetDefaultEncoding returns the encoding that should be used as default.
func GetDefaultEncoding() Encoding {
	if defEncoding != EncodingUnknown {
		return defEncoding
	}
	return EncodingHTML
}
