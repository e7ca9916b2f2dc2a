// Package seqio adapts byte streams to and from lazy lists: readers
// become lazy byte or rune lists that consume input only as elements
// are demanded, and lists write back out through io.Writer.
package seqio

import (
	"bufio"
	"io"

	"github.com/tychoish/fun/erc"

	"github.com/k-gruenberg/lazylist"
)

// Bytes returns the lazy byte list over a reader. Bytes are read one
// at a time (buffered) as list elements are demanded. Any read
// error, including io.EOF, seals the list; if the reader is also an
// io.Closer it is closed at that point, exactly once, and the close
// error is discarded because the sequence view has no error channel.
func Bytes(r io.Reader) *lazylist.List[byte] {
	buf := bufio.NewReader(r)
	return lazylist.View(func() (byte, bool) {
		b, err := buf.ReadByte()
		if err != nil {
			closeIfCloser(r)
			return 0, false
		}
		return b, true
	})
}

// Chars returns the lazy rune list over a reader, decoding UTF-8 as
// elements are demanded. Sealing and closing behave as in Bytes.
func Chars(r io.Reader) *lazylist.List[rune] {
	buf := bufio.NewReader(r)
	return lazylist.View(func() (rune, bool) {
		c, _, err := buf.ReadRune()
		if err != nil {
			closeIfCloser(r)
			return 0, false
		}
		return c, true
	})
}

func closeIfCloser(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}

// WriteTo fully evaluates a byte list and writes every byte to the
// writer. If the writer is also an io.Closer it is closed exactly
// once before returning. Write and close errors are aggregated into
// the returned error; the first write error stops the push. It never
// returns on an infinite list.
func WriteTo(w io.Writer, l *lazylist.List[byte]) error {
	ec := &erc.Collector{}
	buf := bufio.NewWriter(w)
	cursor := l.Cursor()
	for cursor.Next() {
		if err := buf.WriteByte(cursor.Value()); err != nil {
			ec.Add(err)
			break
		}
	}
	ec.Add(buf.Flush())
	if c, ok := w.(io.Closer); ok {
		ec.Add(c.Close())
	}
	return ec.Resolve()
}

// WriteString fully evaluates a rune list and writes it to the
// writer as UTF-8, with the same closing and error aggregation as
// WriteTo.
func WriteString(w io.Writer, l *lazylist.List[rune]) error {
	ec := &erc.Collector{}
	buf := bufio.NewWriter(w)
	cursor := l.Cursor()
	for cursor.Next() {
		if _, err := buf.WriteRune(cursor.Value()); err != nil {
			ec.Add(err)
			break
		}
	}
	ec.Add(buf.Flush())
	if c, ok := w.(io.Closer); ok {
		ec.Add(c.Close())
	}
	return ec.Resolve()
}

// Reader returns an io.Reader view of a byte list, the inverse of
// Bytes. Elements are realized as they are read; the reader returns
// io.EOF once the list seals and the realized bytes are exhausted.
func Reader(l *lazylist.List[byte]) io.Reader { return &listReader{list: l.Cursor()} }

type listReader struct{ list *lazylist.Cursor[byte] }

func (r *listReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if !r.list.Next() {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		p[n] = r.list.Value()
		n++
	}
	return n, nil
}
