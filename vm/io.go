// This file is part of bflamina - https://github.com/db47h/bflamina
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"bufio"
	"bytes"
	"io"
)

// multiReader reads from a list of readers in sequence, closing each one
// once exhausted.
type multiReader struct {
	readers []io.Reader
}

func (mr *multiReader) Read(p []byte) (n int, err error) {
	for len(mr.readers) > 0 {
		n, err = mr.readers[0].Read(p)
		if n > 0 || err != io.EOF {
			if err == io.EOF {
				// Don't return EOF yet. There may be more bytes
				// in the remaining readers.
				err = nil
			}
			return
		}
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

// newInput returns the input stream for a new run: the configured input bytes
// followed by the input readers. Readers are handed over to the new stream
// and will not be seen by later runs.
func (i *Instance) newInput() io.ByteReader {
	var rs []io.Reader
	if len(i.inBytes) > 0 {
		rs = append(rs, bytes.NewReader(i.inBytes))
	}
	rs = append(rs, i.inputs...)
	i.inputs = nil
	return bufio.NewReader(&multiReader{rs})
}

// readByte reads the next input byte. At the end of the input stream, it
// returns 0 and a nil error.
func (i *Instance) readByte() (byte, error) {
	c, err := i.in.ReadByte()
	if err == io.EOF {
		return 0, nil
	}
	return c, err
}
