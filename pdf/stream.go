// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"io"
	"iter"
	"strconv"
)

// StreamBuilder is used to assemble a stream object.
// The stream dictionary is built using the embedded [DictBuilder], the
// stream data is written using the Write method.
type StreamBuilder struct {
	DictBuilder

	// AllowEncoding indicates whether the writer may compress the stream
	// data.  This is ignored if the dictionary declares a /Filter, since
	// the data is then already encoded.
	AllowEncoding bool

	data bytes.Buffer
}

// NewStreamBuilder returns a builder for a stream whose data may be
// compressed by the writer.
func NewStreamBuilder() *StreamBuilder {
	return &StreamBuilder{AllowEncoding: true}
}

// Write appends p to the stream data.
// This implements the [io.Writer] interface.
func (b *StreamBuilder) Write(p []byte) (int, error) {
	return b.data.Write(p)
}

// SetData replaces the stream data by a copy of data.
func (b *StreamBuilder) SetData(data []byte) *StreamBuilder {
	b.data.Reset()
	b.data.Write(data)
	return b
}

// Seal returns an immutable stream with the current contents of the
// builder.
func (b *StreamBuilder) Seal() *Stream {
	s := &Stream{
		dict:          b.DictBuilder.Seal(),
		data:          bytes.Clone(b.data.Bytes()),
		allowEncoding: b.AllowEncoding,
	}
	if s.data == nil {
		s.data = []byte{}
	}
	s.sum = hashStream(s)
	return s
}

// Stream represents an immutable stream object in a PDF file.
//
// If the stream dictionary contains a /Filter entry, the data held by the
// stream is already encoded using these filters.
type Stream struct {
	dict          Dict
	data          []byte
	allowEncoding bool
	sum           Digest
}

// Dict returns the stream dictionary.
// The /Length entry is added by the writer and is normally not present.
func (s *Stream) Dict() Dict {
	return s.dict
}

// Data returns a copy of the stream data.
func (s *Stream) Data() []byte {
	return bytes.Clone(s.data)
}

// Reader returns a reader for the stream data.
func (s *Stream) Reader() io.Reader {
	return bytes.NewReader(s.data)
}

// Len returns the length of the stream data in bytes.
func (s *Stream) Len() int {
	return len(s.data)
}

// AllowEncoding reports whether the stream data may be compressed when
// the stream is written.
func (s *Stream) AllowEncoding() bool {
	return s.allowEncoding
}

// Filtered reports whether the stream dictionary declares a /Filter.
// In this case, [Stream.Data] returns the already filtered bytes.
func (s *Stream) Filtered() bool {
	return s.dict.Has("Filter")
}

// Builder returns a new builder, initialised with the contents of s.
func (s *Stream) Builder() *StreamBuilder {
	b := &StreamBuilder{
		DictBuilder:   *s.dict.Builder(),
		AllowEncoding: s.allowEncoding,
	}
	b.data.Write(s.data)
	return b
}

// Hash returns the structural hash of the stream.
func (s *Stream) Hash() Digest {
	return s.sum
}

// Equal reports whether s and other have equal dictionaries and equal data.
// The AllowEncoding flags are not compared, since encoding is a decision
// made by the writer.
func (s *Stream) Equal(other *Stream) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.sum != other.sum {
		return false
	}
	return s.dict.Equal(other.dict) && bytes.Equal(s.data, other.data)
}

// References yields the indirect references contained in the stream
// dictionary.  This implements the [Collectable] interface.
func (s *Stream) References() iter.Seq[*Reference] {
	return s.dict.References()
}

func (s *Stream) String() string {
	res := "<"
	if tp, ok := s.dict.Get("Type").(Name); ok {
		res += string(tp) + " "
	}
	res += "Stream, " + strconv.Itoa(len(s.data)) + " bytes"
	if f, ok := s.dict.Get("Filter").(Name); ok {
		res += ", " + string(f)
	}
	return res + ">"
}

// PDF implements the [Object] interface.
// The data is written as stored, with a /Length entry matching the data.
func (s *Stream) PDF(w io.Writer) error {
	if s == nil {
		_, err := w.Write([]byte("null"))
		return err
	}
	extra := []dictEntry{{key: "Length", val: Integer(len(s.data))}}
	err := s.dict.writeEntries(w, extra)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(s.data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}
