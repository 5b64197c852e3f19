package model

// Textは抽出できなかった値(null)と空文字を区別する文字列です。
type Text struct {
	value string
	valid bool
}

func NewText(value string) Text {
	return Text{
		value: value,
		valid: true,
	}
}

func NewNullText() Text {
	return Text{}
}

func (t Text) Value() string {
	return t.value
}

func (t Text) Valid() bool {
	return t.valid
}

// Formatは出力用の文字列を返します。nullの場合は空文字です。
func (t Text) Format() string {
	if !t.valid {
		return ""
	}
	return t.value
}
