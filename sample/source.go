/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// keyedBufSize is the number of key stream bytes produced per refill.
const keyedBufSize = 512

// KeyedSource is a deterministic rand.Source whose output is the
// XSalsa20 key stream determined by a 32-byte key. The 24-byte nonce
// is formed from the seed (bytes 0-7) and a block counter
// (bytes 8-15), so reseeding restarts a fresh, reproducible stream.
type KeyedSource struct {
	key   *[32]byte
	seed  uint64
	block uint64
	buf   []byte
	pos   int
}

// NewKeyedSource returns an instance of KeyedSource for the given key,
// seeded with 0.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	s := &KeyedSource{
		key: key,
		buf: make([]byte, keyedBufSize),
	}
	s.Seed(0)

	return s
}

// Seed resets the source to the beginning of the stream for seed.
func (s *KeyedSource) Seed(seed uint64) {
	s.seed = seed
	s.block = 0
	s.pos = len(s.buf)
}

// Uint64 returns the next 8 bytes of the key stream as a
// little-endian integer.
func (s *KeyedSource) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8

	return v
}

// refill produces the next block of key stream by encrypting zeros.
func (s *KeyedSource) refill() {
	nonce := make([]byte, 24)
	binary.LittleEndian.PutUint64(nonce[0:8], s.seed)
	binary.LittleEndian.PutUint64(nonce[8:16], s.block)

	for i := range s.buf {
		s.buf[i] = 0
	}
	salsa20.XORKeyStream(s.buf, s.buf, nonce, s.key)

	s.block++
	s.pos = 0
}

// NewSource returns a PCG source seeded with seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
