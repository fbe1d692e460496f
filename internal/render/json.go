package render

import "encoding/json"

// Blocks and runs encode as JSON objects with a "type" discriminator so the
// display layer can switch on it.

func (b HeadingBlock) MarshalJSON() ([]byte, error) {
	type plain HeadingBlock
	return tagged("heading", plain(b))
}

func (b ParagraphBlock) MarshalJSON() ([]byte, error) {
	type plain ParagraphBlock
	return tagged("paragraph", plain(b))
}

func (b ListBlock) MarshalJSON() ([]byte, error) {
	type plain ListBlock
	return tagged("list", plain(b))
}

func (b TableBlock) MarshalJSON() ([]byte, error) {
	type plain TableBlock
	return tagged("table", plain(b))
}

func (b CodeBlock) MarshalJSON() ([]byte, error) {
	type plain CodeBlock
	return tagged("codeBlock", plain(b))
}

func (b MathBlock) MarshalJSON() ([]byte, error) {
	return tagged("latexBlock", b.Math)
}

func (r TextRun) MarshalJSON() ([]byte, error) {
	type plain TextRun
	return tagged("text", plain(r))
}

func (r BoldRun) MarshalJSON() ([]byte, error) {
	type plain BoldRun
	return tagged("bold", plain(r))
}

func (r ItalicRun) MarshalJSON() ([]byte, error) {
	type plain ItalicRun
	return tagged("italic", plain(r))
}

func (r CodeRun) MarshalJSON() ([]byte, error) {
	type plain CodeRun
	return tagged("inlineCode", plain(r))
}

func (r LinkRun) MarshalJSON() ([]byte, error) {
	type plain LinkRun
	return tagged("link", plain(r))
}

func (r MathRun) MarshalJSON() ([]byte, error) {
	return tagged("math", r.Math)
}

// tagged encodes v and prepends a "type" field to the resulting object.
func tagged(kind string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(body)+len(head)+10)
	out = append(out, `{"type":`...)
	out = append(out, head...)
	if len(body) > 2 {
		out = append(out, ',')
		out = append(out, body[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}
