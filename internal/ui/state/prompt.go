package state

import "unicode"

// Prompt is the editable query line: its text and the caret position in
// runes.
type Prompt struct {
	Text  string
	Caret int
}

// Set replaces the text and clamps caret into it.
func (p *Prompt) Set(text string, caret int) {
	p.Text = text
	n := len([]rune(text))
	if caret < 0 {
		caret = 0
	}
	if caret > n {
		caret = n
	}
	p.Caret = caret
}

// CaretPos returns the caret clamped to the current text.
func (p *Prompt) CaretPos() int {
	runes := []rune(p.Text)
	if p.Caret < 0 {
		return 0
	}
	if p.Caret > len(runes) {
		return len(runes)
	}
	return p.Caret
}

// Insert adds text at the caret.
func (p *Prompt) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Text)
	pos := p.CaretPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward removes the rune before the caret.
func (p *Prompt) DeleteRuneBackward() bool {
	runes := []rune(p.Text)
	pos := p.CaretPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.Set(string(updated), pos-1)
	return true
}

// DeleteRuneForward removes the rune under the caret.
func (p *Prompt) DeleteRuneForward() bool {
	runes := []rune(p.Text)
	pos := p.CaretPos()
	if pos >= len(runes) {
		return false
	}
	updated := append(runes[:pos], runes[pos+1:]...)
	p.Set(string(updated), pos)
	return true
}

// DeleteWordBackward removes the word before the caret along with any
// whitespace between it and the caret.
func (p *Prompt) DeleteWordBackward() bool {
	runes := []rune(p.Text)
	pos := p.CaretPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	p.Set(string(updated), i)
	return true
}

// Clear empties the prompt.
func (p *Prompt) Clear() bool {
	if p.Text == "" {
		return false
	}
	p.Set("", 0)
	return true
}

// MoveStart moves the caret to the start.
func (p *Prompt) MoveStart() bool {
	if p.CaretPos() == 0 {
		return false
	}
	p.Caret = 0
	return true
}

// MoveEnd moves the caret to the end.
func (p *Prompt) MoveEnd() bool {
	end := len([]rune(p.Text))
	if p.CaretPos() == end {
		return false
	}
	p.Caret = end
	return true
}

// MoveWordBackward moves the caret to the start of the previous word.
func (p *Prompt) MoveWordBackward() bool {
	runes := []rune(p.Text)
	pos := p.CaretPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	if i == pos {
		return false
	}
	p.Caret = i
	return true
}

// MoveWordForward moves the caret past the next word and trailing spaces.
func (p *Prompt) MoveWordForward() bool {
	runes := []rune(p.Text)
	pos := p.CaretPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.Caret = i
	return true
}

// MoveRuneBackward moves the caret one rune left.
func (p *Prompt) MoveRuneBackward() bool {
	if p.CaretPos() == 0 {
		return false
	}
	p.Caret = p.CaretPos() - 1
	return true
}

// MoveRuneForward moves the caret one rune right.
func (p *Prompt) MoveRuneForward() bool {
	pos := p.CaretPos()
	if pos >= len([]rune(p.Text)) {
		return false
	}
	p.Caret = pos + 1
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
