// Package textbuf provides the single-line editable text buffer behind
// the search box. All positions are character (rune) indices; byte
// offsets never leave this package, so multi-byte input stays correct.
package textbuf

import "unicode"

// Buffer is a mutable run of text with a cursor. The cursor ranges
// over [0, Len()] inclusive - it may sit one past the last character.
type Buffer struct {
	runes  []rune
	cursor int
}

// New returns an empty buffer with the cursor at 0
func New() *Buffer {
	return &Buffer{}
}

// String returns the buffer content
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the number of characters in the buffer
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Cursor returns the current cursor position
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Empty reports whether the buffer holds no text
func (b *Buffer) Empty() bool {
	return len(b.runes) == 0
}

// SetString replaces the entire content and moves the cursor to the end
func (b *Buffer) SetString(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

// Clear empties the buffer and resets the cursor
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
	b.cursor = 0
}

// Insert places r at the cursor and advances past it
func (b *Buffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// DeleteForward removes the character under the cursor; no-op at the end
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.runes) {
		return
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

// DeleteBackward removes the character before the cursor; no-op at 0
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.cursor--
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

// MoveLeft steps the cursor one character left; no-op at 0
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight steps the cursor one character right; no-op at the end
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

// MoveToStart places the cursor at position 0
func (b *Buffer) MoveToStart() {
	b.cursor = 0
}

// MoveToEnd places the cursor one past the last character
func (b *Buffer) MoveToEnd() {
	b.cursor = len(b.runes)
}

// MoveToNextWord advances past the current run of non-whitespace, then
// past the following whitespace. Starting on whitespace skips the first
// phase. Stops at the end of the buffer.
func (b *Buffer) MoveToNextWord() {
	pos := b.cursor
	for pos < len(b.runes) && !unicode.IsSpace(b.runes[pos]) {
		pos++
	}
	for pos < len(b.runes) && unicode.IsSpace(b.runes[pos]) {
		pos++
	}
	b.cursor = pos
}

// MoveToPrevWord steps back one position, skips whitespace backward,
// then moves to the start of the preceding word. Stops at 0.
func (b *Buffer) MoveToPrevWord() {
	if b.cursor == 0 {
		return
	}
	pos := b.cursor - 1
	for pos > 0 && unicode.IsSpace(b.runes[pos]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.runes[pos-1]) {
		pos--
	}
	b.cursor = pos
}
