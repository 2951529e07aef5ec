package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/bkrs2json/internal/language"
)

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawEntry
		want    *Entry
		wantErr error
	}{
		{
			name: "single meaning",
			raw:  RawEntry{"你好", "[p]nǐhǎo[/p]", "[m1]привет[/m]"},
			want: &Entry{
				Headword: "你好",
				Pinyin:   "nǐhǎo",
				Meanings: []string{"привет"},
			},
		},
		{
			name: "examples are removed",
			raw:  RawEntry{"文本", "wénběn", "[ex]someexample[/ex][m]текст[/m]"},
			want: &Entry{
				Headword: "文本",
				Pinyin:   "wénběn",
				Meanings: []string{"текст"},
			},
		},
		{
			name: "meanings span joined body lines",
			raw: RawEntry{
				"好",
				"[b][p]hǎo[/p][/b]",
				"[m1]1) [p]прил.[/p]",
				"хороший[/m]",
				"[m2][ex][*]好人[/*] хороший человек[/ex][/m]",
				"[m2]добрый; [ref]好心[/ref][/m]",
			},
			want: &Entry{
				Headword: "好",
				Pinyin:   "hǎo",
				Meanings: []string{"1) прил. хороший", "добрый; 好心"},
			},
		},
		{
			name: "latin meanings are dropped",
			raw:  RawEntry{"咖啡", "kāfēi", "[m1]кофе[/m]", "[m1]coffee[/m]"},
			want: &Entry{
				Headword: "咖啡",
				Pinyin:   "kāfēi",
				Meanings: []string{"кофе"},
			},
		},
		{
			name: "roman numeral sections are kept",
			raw:  RawEntry{"行", "xíng; háng", "[m]I[/m]", "[m1]идти[/m]", "[m]II[/m]", "[m1]ряд[/m]"},
			want: &Entry{
				Headword: "行",
				Pinyin:   "xíng; háng",
				Meanings: []string{"I", "идти", "II", "ряд"},
			},
		},
		{
			name: "escapes and whitespace are normalized",
			raw:  RawEntry{"牌", "pái", `[m1]  марка   \[сорт\]  \"Лотос\"  [/m]`},
			want: &Entry{
				Headword: "牌",
				Pinyin:   "pái",
				Meanings: []string{`марка [сорт] "Лотос"`},
			},
		},
		{
			name: "empty meanings are skipped",
			raw:  RawEntry{"空", "kōng", "[m1]   [/m]", "[m1]пустой[/m]"},
			want: &Entry{
				Headword: "空",
				Pinyin:   "kōng",
				Meanings: []string{"пустой"},
			},
		},
		{
			name: "only latin meanings drop the entry",
			raw:  RawEntry{"电脑", "diànnǎo", "[m1]computer[/m]", "[m1]PC 123[/m]"},
			want: nil,
		},
		{
			name: "no meaning markers drop the entry",
			raw:  RawEntry{"电脑", "diànnǎo", "компьютер"},
			want: nil,
		},
		{
			name: "headword and pinyin only",
			raw:  RawEntry{"电脑", "diànnǎo"},
			want: nil,
		},
		{
			name:    "missing pinyin line",
			raw:     RawEntry{"电脑"},
			wantErr: ErrMalformedEntry,
		},
		{
			name:    "empty entry",
			raw:     RawEntry{},
			wantErr: ErrMalformedEntry,
		},
	}

	normalizer := NewNormalizer(language.NewRussianClassifier(language.DefaultRussianThreshold))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizer.Normalize(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if got != nil {
				assert.NotEmpty(t, got.Headword)
				assert.NotEmpty(t, got.Meanings)
				for _, tag := range []string{"[p]", "[/p]", "[b]", "[/b]", "[c]", "[/c]", "[i]", "[/i]", "[ref]", "[/ref]", "[*]", "[/*]"} {
					assert.NotContains(t, got.Pinyin, tag)
				}
			}
		})
	}
}

type classifierFunc func(string) bool

func (f classifierFunc) IsMainlyRussian(meaning string) bool {
	return f(meaning)
}

func TestNormalizer_Normalize_ClassifiesTrimmedCandidates(t *testing.T) {
	var got []string
	normalizer := NewNormalizer(classifierFunc(func(meaning string) bool {
		got = append(got, meaning)
		return true
	}))

	_, err := normalizer.Normalize(RawEntry{"词", "cí", `[m1]  \[a\]   b [/m]`})
	require.NoError(t, err)
	assert.Equal(t, []string{`\[a\]   b`}, got)
}
